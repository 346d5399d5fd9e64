package domain

// View is which of the mutually exclusive renderings of a detail screen applies.
type View int

const (
	ViewLoading View = iota
	ViewError
	ViewNotFound
	ViewReady
)

// ViewOf picks the rendering in priority order: loading, error, not found,
// then ready.
func ViewOf(loading bool, errMsg string, found bool) View {
	switch {
	case loading:
		return ViewLoading
	case errMsg != "":
		return ViewError
	case !found:
		return ViewNotFound
	default:
		return ViewReady
	}
}

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewNotFound:
		return "not_found"
	default:
		return "ready"
	}
}

func (v View) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
