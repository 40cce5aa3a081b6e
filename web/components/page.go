package components

import "fmt"

var previewModes = []string{"live", "demo"}

func previewURL(mode string, width int) string {
	return fmt.Sprintf("/preview.png?mode=%s&width=%d", mode, width)
}
