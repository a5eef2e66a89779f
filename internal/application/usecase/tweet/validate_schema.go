package tweet

import (
	"context"

	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// ValidateSchemaUseCase checks a tweet dataset header before processing.
type ValidateSchemaUseCase struct{}

// NewValidateSchemaUseCase creates a new ValidateSchemaUseCase instance.
func NewValidateSchemaUseCase() *ValidateSchemaUseCase {
	return &ValidateSchemaUseCase{}
}

// Execute validates the column names.
func (uc *ValidateSchemaUseCase) Execute(_ context.Context, columns []string) (*valueobject.TweetSchemaResult, error) {
	if len(columns) == 0 {
		return nil, domainerror.NewTweetDataError(
			domainerror.ErrCodeEmptyColumnList,
			"at least one column name is required",
			domainerror.ErrEmptyColumnList,
		)
	}

	result := valueobject.ValidateTweetColumns(columns)
	return &result, nil
}
