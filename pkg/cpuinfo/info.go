package cpuinfo

import "strings"

// Info holds the fields of interest from a system info file. Empty strings
// mean the field was absent.
type Info struct {
	Revision string
	Serial   string
	Model    string
}

func extract(doc *Document) Info {
	var info Info
	for _, line := range doc.Lines {
		name := line.Name()
		switch {
		case strings.Contains(name, "Revision"):
			// The last revision line wins.
			info.Revision = line.Text()
		case strings.HasPrefix(name, "Serial"):
			if v := line.Text(); v != "" {
				info.Serial = v
			}
		case strings.HasPrefix(name, "Model"):
			if v := line.Text(); v != "" {
				info.Model = v
			}
		}
	}
	return info
}
