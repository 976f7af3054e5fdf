package server

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

const (
	maxPlayerIDLength = 64
	maxNameLength     = 24
	maxGuessLength    = 60
	maxChatLength     = 200
	maxDrawingBytes   = 64 * 1024
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("printable", func(fl validator.FieldLevel) bool {
		return isSafeText(fl.Field().String())
	})
	return v
}

type createRoomRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=64"`
	Name     string `json:"name" validate:"required,max=24,printable"`
}

type joinRoomRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=64"`
	Name     string `json:"name" validate:"required,max=24,printable"`
}

type playerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

type guessRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Text     string `json:"text" validate:"required,max=60,printable"`
}

type chatRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Text     string `json:"text" validate:"required,max=200,printable"`
}

type drawRequest struct {
	PlayerID string          `json:"player_id" validate:"required,max=64"`
	Kind     string          `json:"kind" validate:"omitempty,oneof=stroke clear"`
	Data     json.RawMessage `json:"data"`
}

func validateRequest(req any) error {
	return validate.Struct(req)
}

// isSafeText rejects control characters; everything printable is allowed,
// drawings are a different channel.
func isSafeText(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
