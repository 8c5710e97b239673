package constants

const (
	MAX_PAGE_SIZE          = 100
	DEFAULT_OFFSET         = uint64(0)
	DEFAULT_DESIGNS_LIMIT  = 20
	DEFAULT_HOLDINGS_LIMIT = 50
	DEFAULT_JOURNAL_LIMIT  = 50
	MAX_JOURNAL_SUBJECTS   = 20
)
