package pagination

// PageDefaultSize is the page size used when none is requested
const PageDefaultSize = 10

// PageMinSize and PageMaxSize bound the accepted page size
const (
	PageMinSize = 10
	PageMaxSize = 100
)
