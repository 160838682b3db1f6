package pagination

const (
	// DefaultPageNumber is used when the requested page number is absent or negative.
	DefaultPageNumber = 0
	// DefaultPageSize is used when the requested page size is absent or below 1.
	DefaultPageSize = 25
)

// PageRequest holds resolved offset pagination inputs for listing queries.
type PageRequest struct {
	Number int
	Size   int
}

// Resolve normalizes raw page inputs. nil means the parameter was absent.
func Resolve(number, size *int) PageRequest {
	req := PageRequest{Number: DefaultPageNumber, Size: DefaultPageSize}
	if number != nil && *number >= 0 {
		req.Number = *number
	}
	if size != nil && *size >= 1 {
		req.Size = *size
	}
	return req
}

// Offset returns the row offset the store should skip for this page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}
