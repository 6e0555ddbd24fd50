package complaints

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// validateCreate проверяет форму жалобы
func validateCreate(req *CreateRequest) error {
	fields := map[string]string{}

	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		fields["title"] = "Title is required"
	case utf8.RuneCountInString(title) > domain.MaxComplaintTitleLength:
		fields["title"] = "Title must be at most 200 characters"
	}

	description := strings.TrimSpace(req.Description)
	switch {
	case description == "":
		fields["description"] = "Description is required"
	case utf8.RuneCountInString(description) > domain.MaxComplaintBodyLength:
		fields["description"] = "Description must be at most 2000 characters"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
