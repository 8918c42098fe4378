package domain

import "strconv"

// CardPhase is the lifecycle phase of one card's image acquisition.
type CardPhase string

// Possible card phases
const (
	CardPhaseLoading CardPhase = "loading"
	CardPhaseReady   CardPhase = "ready"
	CardPhaseFailed  CardPhase = "failed"
)

// ErrorKind classifies a terminal image failure.
type ErrorKind string

// Possible error kinds
const (
	ErrorKindNone           ErrorKind = ""
	ErrorKindQuotaExceeded  ErrorKind = "quota_exceeded"
	ErrorKindNetworkOrOther ErrorKind = "network_or_other"
)

// Label is the user-facing caption shown on a failed card.
func (k ErrorKind) Label() string {
	switch k {
	case ErrorKindQuotaExceeded:
		return "Studio Overloaded"
	case ErrorKindNetworkOrOther:
		return "Visual Synthesis Halted"
	default:
		return ""
	}
}

// CardState is a point-in-time snapshot of one card.
type CardState struct {
	Index      int       `json:"index"`
	Key        string    `json:"key"`
	Text       string    `json:"text"`
	Context    string    `json:"context"`
	Phase      CardPhase `json:"phase"`
	ImageURI   string    `json:"image_uri,omitempty"`
	ErrorKind  ErrorKind `json:"error_kind,omitempty"`
	ErrorLabel string    `json:"error_label,omitempty"`
	RetryCount int       `json:"retry_count"`
	Copied     bool      `json:"copied"`
}

// CanDownload reports whether the card has an image to composite.
func (s CardState) CanDownload() bool {
	return s.Phase == CardPhaseReady && s.ImageURI != ""
}

// DownloadFilename is the name of the composited PNG for the card at index.
func DownloadFilename(index int) string {
	return "lumina-2026-greeting-" + strconv.Itoa(index) + ".png"
}
