package envelope

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	b, err := json.Marshal(Ok(map[string]string{"title": "hello"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"title":"hello"}}`, string(b))
}

func TestOkMessage(t *testing.T) {
	b, err := json.Marshal(OkMessage("blog deleted"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"blog deleted"}`, string(b))
}

func TestFail(t *testing.T) {
	b, err := json.Marshal(Fail("invalid json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"invalid json"}`, string(b))
}

func TestFail_FieldErrors(t *testing.T) {
	b, err := json.Marshal(Fail(map[string]string{"title": "title is required"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":{"title":"title is required"}}`, string(b))
}

func TestOkList_MetaAtTopLevel(t *testing.T) {
	b, err := json.Marshal(OkList([]string{"a", "b"}, 2, 10, 21))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":true,"data":["a","b"],"page":2,"limit":10,"total":21,"pages":3}`,
		string(b))
}

func TestOkList_ZeroTotalKeepsMeta(t *testing.T) {
	b, err := json.Marshal(OkList([]string{}, 1, 50, 0))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":true,"page":1,"limit":50,"total":0,"pages":0}`,
		string(b))
}
