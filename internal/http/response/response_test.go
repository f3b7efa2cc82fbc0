package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]int{"id": 42})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something broke")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		MemberUID string `validate:"required,uuid"`
		Date      string `validate:"required,datetime=02-01-2006"`
	}

	v := validator.New()
	err := v.Struct(req{})
	require.Error(t, err)

	errs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	resp := ValidationError(errs)
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "MemberUID")
	assert.Contains(t, resp.Error, "Date")
	assert.Contains(t, resp.Error, "required")
}
