package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RackSavant/sistachat-sub000/internal/api/shared/constants"
)

// PageQueryParams holds offset pagination parameters for list endpoints
type PageQueryParams struct {
	Limit  int    `form:"limit"`
	Offset uint64 `form:"offset,default=0"`
}

// ParsePageQuery parses limit and offset, capping the limit at MAX_PAGE_SIZE
func ParsePageQuery(c *gin.Context, defaultLimit int) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}
	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// GetJournalQueryParams holds query parameters for GET /journal
type GetJournalQueryParams struct {
	// Filters
	Subjects     []string `form:"subject"`
	Instructions []string `form:"instruction"`

	// Pagination
	Anchor *uint64 `form:"anchor"` // return entries with a cursor greater than this
	Limit  int     `form:"limit"`
}

// ParseGetJournalQuery parses query parameters for GET /journal.
// Filters accept both repeated parameters and comma-separated values.
func ParseGetJournalQuery(c *gin.Context) (*GetJournalQueryParams, error) {
	var params GetJournalQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Subjects = splitCSV(params.Subjects)
	params.Instructions = splitCSV(params.Instructions)

	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}
	if params.Limit == 0 {
		params.Limit = constants.DEFAULT_JOURNAL_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the journal query
func (p *GetJournalQueryParams) Validate() error {
	if len(p.Subjects) > constants.MAX_JOURNAL_SUBJECTS {
		return fmt.Errorf("maximum %d subjects allowed", constants.MAX_JOURNAL_SUBJECTS)
	}
	return nil
}

func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
