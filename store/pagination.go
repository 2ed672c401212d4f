package store

const (
	DefaultPaginationLimit = 100
)

type Pagination struct {
	Offset int
	Limit  int
}

func DefaultPagination() Pagination {
	return Pagination{
		Offset: 0,
		Limit:  DefaultPaginationLimit,
	}
}
