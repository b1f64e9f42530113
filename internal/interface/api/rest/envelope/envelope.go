package envelope

// Response is the uniform body of every endpoint: {success:true, data} on
// success, {success:false, error} on failure. Listing endpoints carry the
// pagination meta at the top level next to data.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   any    `json:"error,omitempty"`

	Page  *int `json:"page,omitempty"`
	Limit *int `json:"limit,omitempty"`
	Total *int `json:"total,omitempty"`
	Pages *int `json:"pages,omitempty"`
}

func Ok(data any) Response {
	return Response{Success: true, Data: data}
}

func OkMessage(msg string) Response {
	return Response{Success: true, Message: msg}
}

func OkList(items any, page, limit, total int) Response {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return Response{
		Success: true,
		Data:    items,
		Page:    &page,
		Limit:   &limit,
		Total:   &total,
		Pages:   &pages,
	}
}

func Fail(err any) Response {
	return Response{Success: false, Error: err}
}
