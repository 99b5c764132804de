package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateInput {
	return CreateInput{
		Scope:    ScopeDomestic,
		Category: "Construction",
		Type:     TypeDaily,
		Salary:   "₹600 / Day",
		Location: "Mumbai",
		Title:    "Construction Helper",
		Contact:  "+919876543210",
	}
}

func TestNewFromInput_LowercasesTranslationKeys(t *testing.T) {
	in := validInput()
	in.Translations = map[string]Translation{
		"HI":   {Title: "निर्माण सहायक"},
		" bn ": {Title: "নির্মাণ সহায়ক"},
		"":     {Title: "dropped"},
	}

	j := NewFromInput(in, time.Now())
	require.Len(t, j.Translations, 2)
	assert.Equal(t, "निर्माण सहायक", j.Translations["hi"].Title)
	assert.Equal(t, "নির্মাণ সহায়ক", j.Translations["bn"].Title)
}

func TestNewFromInput_StampsFreshPosting(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 19800))
	j := NewFromInput(validInput(), now)

	assert.True(t, j.IsActive)
	assert.True(t, j.IsNew)
	assert.Equal(t, now.UTC(), j.PostedAt)
	assert.Nil(t, j.Translations)
}

func TestCreateInput_Validate(t *testing.T) {
	require.NoError(t, validInput().Validate())

	bad := validInput()
	bad.Type = "Hourly"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = validInput()
	bad.Contact = " "
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}
