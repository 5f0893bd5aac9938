package sheet

// PendingMarker prefixes the best-known value of a pending cell.
const PendingMarker = "PENDING: "

// Display derives the text shown for a status and the comment shown above
// it. Either string is empty when there is nothing to show.
func Display(s Status) (display string, comment string) {
	switch s.Kind {
	case StatusError:
		return "Error", ""
	case StatusEmpty:
		return "", ""
	case StatusPending:
		if s.Cell.Value.IsNone() {
			return "", s.Cell.Comment
		}
		return PendingMarker + s.Cell.Value.String(), s.Cell.Comment
	case StatusFinished:
		return s.Cell.Value.String(), s.Cell.Comment
	default:
		return "", ""
	}
}
