package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	ID    string  `param:"id" json:"-"`
	Name  string  `json:"name"`
	Notes *string `json:"notes"`
}

type queryTarget struct {
	ProjectID string `query:"projectId"`
}

func bindRequest(t *testing.T, method, target, body, ctype string, dst interface{}) error {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if ctype != "" {
		req.Header.Set(echo.HeaderContentType, ctype)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	return (&StrictBinder{}).Bind(dst, c)
}

func TestStrictBinder_JSONBody(t *testing.T) {
	var dst bindTarget
	err := bindRequest(t, http.MethodPatch, "/items/abc", `{"name":"alpha","notes":"n"}`, echo.MIMEApplicationJSON, &dst)
	require.NoError(t, err)
	assert.Equal(t, "abc", dst.ID)
	assert.Equal(t, "alpha", dst.Name)
	require.NotNil(t, dst.Notes)
	assert.Equal(t, "n", *dst.Notes)
}

func TestStrictBinder_RejectsUnknownFields(t *testing.T) {
	var dst bindTarget
	err := bindRequest(t, http.MethodPost, "/items", `{"name":"alpha","tenantId":"x"}`, echo.MIMEApplicationJSON, &dst)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBadRequest))
	assert.Contains(t, err.Error(), `Unknown field "tenantId"`)
}

func TestStrictBinder_RejectsNonJSON(t *testing.T) {
	var dst bindTarget
	err := bindRequest(t, http.MethodPost, "/items", `name=alpha`, echo.MIMEApplicationForm, &dst)
	assert.True(t, IsKind(err, KindBadRequest))
}

func TestStrictBinder_MalformedJSON(t *testing.T) {
	var dst bindTarget
	err := bindRequest(t, http.MethodPost, "/items", `{"name":"alpha",}`, echo.MIMEApplicationJSON, &dst)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBadRequest))
	assert.Contains(t, err.Error(), "Malformed JSON body")

	err = bindRequest(t, http.MethodPost, "/items", `{"name":1}`, echo.MIMEApplicationJSON, &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name has an invalid type")
}

func TestStrictBinder_TruncatedObject(t *testing.T) {
	for _, body := range []string{`{"name":`, `{"name":"alpha"`, `{`} {
		var dst bindTarget
		err := bindRequest(t, http.MethodPost, "/items", body, echo.MIMEApplicationJSON, &dst)
		require.Error(t, err, body)
		assert.True(t, IsKind(err, KindBadRequest), body)
		assert.Contains(t, err.Error(), "Malformed JSON body", body)
	}
}

func TestStrictBinder_EmptyBodyIsAllowed(t *testing.T) {
	var dst bindTarget
	err := bindRequest(t, http.MethodPatch, "/items/abc", "", "", &dst)
	require.NoError(t, err)
	assert.Equal(t, "abc", dst.ID)
}

func TestStrictBinder_QueryOnGet(t *testing.T) {
	var dst queryTarget
	err := bindRequest(t, http.MethodGet, "/tasks?projectId=p-1", "", "", &dst)
	require.NoError(t, err)
	assert.Equal(t, "p-1", dst.ProjectID)
}
