package validator_test

import (
	"strings"
	"testing"
	"travelog/shared/failure"
	"travelog/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerBody struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type photoBody struct {
	Title  string `json:"title"  validate:"required"`
	Base64 string `json:"base64" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=10"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"email":"a@b.com","name":"Ana","password":"secret1"}`)

	req := registerBody{}
	err := validator.Validate(body, &req)

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", req.Email)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	req := registerBody{}
	err := validator.Validate(strings.NewReader(`{"email":`), &req)

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestValidateRejectsMissingFields(t *testing.T) {
	req := registerBody{}
	err := validator.Validate(strings.NewReader(`{"email":"a@b.com"}`), &req)

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Contains(t, err.Error(), "required")
}

func TestValidatePhotoPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "png data uri accepted",
			body:    `{"title":"Temple","base64":"data:image/png;base64,iVBORw0KGgo="}`,
			wantErr: false,
		},
		{
			name:    "gif data uri rejected",
			body:    `{"title":"Temple","base64":"data:image/gif;base64,R0lGODlh"}`,
			wantErr: true,
		},
		{
			name:    "plain string rejected",
			body:    `{"title":"Temple","base64":"not a data uri"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := photoBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
