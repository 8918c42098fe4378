package card

import "log/slog"

// LogClipboard is the server-side clipboard. A server has no system
// clipboard, so it records the copy and the HTTP response carries the text
// to the client.
type LogClipboard struct {
	Logger *slog.Logger
}

// WriteText implements Clipboard.
func (c LogClipboard) WriteText(text string) error {
	if c.Logger != nil {
		c.Logger.Debug("greeting copied", "text_length", len(text))
	}
	return nil
}
