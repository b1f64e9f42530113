package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domAnnouncement "content-manager-api/internal/domain/announcement"
	domPublication "content-manager-api/internal/domain/publication"
	domTeamMember "content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/interface/api/rest/dto/announcement"
	"content-manager-api/internal/interface/api/rest/dto/auth"
	"content-manager-api/internal/interface/api/rest/dto/blog"
	"content-manager-api/internal/interface/api/rest/dto/contact"
	"content-manager-api/internal/interface/api/rest/dto/donation"
	"content-manager-api/internal/interface/api/rest/dto/event"
	"content-manager-api/internal/interface/api/rest/dto/opportunity"
	"content-manager-api/internal/interface/api/rest/dto/publication"
	"content-manager-api/internal/interface/api/rest/dto/teammember"
)

const (
	defaultLimit = 50
	maxLimit     = 100

	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var amountRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}
	return p, nil
}

func ValidateLimit(limit string) (int, error) {
	if limit == "" {
		return defaultLimit, nil
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		return 0, errors.New("invalid limit")
	}
	if l > maxLimit {
		l = maxLimit
	}
	return l, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ParseDate accepts the two formats clients send for event dates.
func ParseDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("must be YYYY-MM-DD or RFC3339")
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func ValidateAnnouncement(r announcement.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}
	if r.Category != "" && !domAnnouncement.ValidCategory(r.Category) {
		errs["category"] = "category must be 'announcement' or 'opportunities'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateAnnouncementUpdate(r announcement.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if r.Category != nil && !domAnnouncement.ValidCategory(*r.Category) {
		errs["category"] = "category must be 'announcement' or 'opportunities'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateBlog(r blog.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(r.Content) == "" {
		errs["content"] = "content is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateBlogUpdate(r blog.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		errs["content"] = "content must not be empty"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePublication(r publication.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}
	if r.Category == "" {
		errs["category"] = "category is required"
	} else if !domPublication.ValidCategory(r.Category) {
		errs["category"] = "category must be 'Research', 'Reports' or 'Resources'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePublicationUpdate(r publication.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if r.Category != nil && !domPublication.ValidCategory(*r.Category) {
		errs["category"] = "category must be 'Research', 'Reports' or 'Resources'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateTeamMember(r teammember.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(r.Role) == "" {
		errs["role"] = "role is required"
	}
	if r.Category == "" {
		errs["category"] = "category is required"
	} else if !domTeamMember.ValidCategory(r.Category) {
		errs["category"] = "category must be 'current' or 'alumnae'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateTeamMemberUpdate(r teammember.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "name must not be empty"
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		errs["role"] = "role must not be empty"
	}
	if r.Category != nil && !domTeamMember.ValidCategory(*r.Category) {
		errs["category"] = "category must be 'current' or 'alumnae'"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateOpportunity(r opportunity.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(r.Link) == "" {
		errs["link"] = "link is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateOpportunityUpdate(r opportunity.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	if r.Link != nil && strings.TrimSpace(*r.Link) == "" {
		errs["link"] = "link must not be empty"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateEvent(r event.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateEventUpdate(r event.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs["title"] = "title must not be empty"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateContact(r contact.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(r.Email) {
		errs["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	if strings.TrimSpace(r.Message) == "" {
		errs["message"] = "message is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateDonation(r donation.Request) map[string]string {
	errs := make(map[string]string)

	if r.Amount == "" {
		errs["amount"] = "amount is required"
	} else if !amountRe.MatchString(r.Amount) {
		errs["amount"] = "amount must be a positive number"
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["first_name"] = "first_name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["last_name"] = "last_name is required"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(r.Email) {
		errs["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(r.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(r.Country) == "" {
		errs["country"] = "country is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "phone is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	if name := strings.TrimSpace(r.Name); name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(strings.ToLower(strings.TrimSpace(r.Email))) {
		errs["email"] = "invalid email format"
	}
	if errMsg := passwordError(r.Password); errMsg != "" {
		errs["password"] = errMsg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(strings.ToLower(strings.TrimSpace(r.Email))) {
		errs["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func passwordError(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8-72 characters"
	}
	return ""
}

// PasswordError is reused by the reset flow where only the new password needs
// checking.
func PasswordError(password string) string { return passwordError(password) }
