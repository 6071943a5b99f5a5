package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/utils"
)

type sampleRequest struct {
	Title string `validate:"required"`
	Email string `validate:"required,email"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Kind  string `validate:"omitempty,oneof=activity flight hotel food"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := utils.ValidateStruct(sampleRequest{
		Title: "Japan Trip",
		Email: "friend@example.com",
		Date:  "2025-04-01",
		Kind:  "flight",
	})
	assert.Nil(t, err)
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	verr := utils.ValidateStruct(sampleRequest{
		Email: "not-an-email",
		Date:  "01/04/2025",
		Kind:  "cruise",
	})
	require.NotNil(t, verr)

	assert.Equal(t, "title is required", verr.Fields["title"])
	assert.Equal(t, "email must be a valid email", verr.Fields["email"])
	assert.Equal(t, "date must be a date in YYYY-MM-DD format", verr.Fields["date"])
	assert.Equal(t, "kind must be one of: activity, flight, hotel, food", verr.Fields["kind"])

	// Error() must mention every failing field for log readability.
	msg := verr.Error()
	for _, field := range []string{"title", "email", "date", "kind"} {
		assert.Contains(t, msg, field)
	}
}

func TestValidateStruct_OmitemptySkipsBlank(t *testing.T) {
	verr := utils.ValidateStruct(sampleRequest{
		Title: "Japan Trip",
		Email: "friend@example.com",
		Date:  "2025-04-01",
	})
	assert.Nil(t, verr)
}
