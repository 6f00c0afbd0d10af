package inspector

import (
	"log"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// initClipboard reports whether the system clipboard is usable. Headless
// environments commonly fail here; the copy button is simply omitted then.
func initClipboard() bool {
	if err := clipboard.Init(); err != nil {
		log.Printf("inspector: clipboard unavailable: %v", err)
		return false
	}
	return true
}

// copyToClipboard serializes every section's current values to yaml and
// places the document on the system clipboard.
func (i *Inspector) copyToClipboard() {
	if i == nil || !i.clipboardReady {
		return
	}

	doc := make(map[string]map[string]string, len(i.sections))
	for _, sec := range i.sections {
		values := make(map[string]string)
		for _, f := range sec.fields() {
			if f.Value != nil {
				values[f.Name] = f.Value()
			}
		}
		doc[sec.title] = values
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		log.Printf("inspector: marshal settings: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}
