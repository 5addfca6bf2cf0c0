package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProposal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"minimal", `{"name":"Ana"}`, false},
		{"full", `{"id":"9","name":"Ana","skills":["Go"],"learningGoals":["Jazz"],"matchScore":77,"message":"hi"}`, false},
		{"missing name", `{"matchScore":50}`, true},
		{"score too high", `{"name":"Ana","matchScore":101}`, true},
		{"fractional score", `{"name":"Ana","matchScore":50.5}`, true},
		{"skills not strings", `{"name":"Ana","skills":[1,2]}`, true},
		{"not json", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(ProposalSchema, []byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, Validate(ReviewSchema, []byte(`{"rating":5,"feedback":""}`)))
	assert.ErrorIs(t, Validate(ReviewSchema, []byte(`{"feedback":"great"}`)), ErrInvalidPayload)
	assert.ErrorIs(t, Validate(ReviewSchema, []byte(`{"rating":"5"}`)), ErrInvalidPayload)
}
