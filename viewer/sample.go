package viewer

import (
	"fmt"
	"strings"
)

var sampleText = makeSampleText(200)

func makeSampleText(n int) string {
	sb := strings.Builder{}
	sb.WriteString("scrollpanel\n\n")
	sb.WriteString("wheel: scroll with momentum (disable with -momentum=false)\n")
	sb.WriteString("scrollbar: drag the thumb, or hold the button on the track to page\n\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "%4d\t%s\n", i, strings.Repeat("-", i%60))
	}
	return sb.String()
}
