package networkd

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
)

// Header template placeholders.
const (
	HeaderTmplIfName   = "ifname"
	HeaderTmplMAC      = "mac"
	HeaderTmplLinkType = "link_type"
)

var headerPlaceholders = []string{HeaderTmplIfName, HeaderTmplMAC, HeaderTmplLinkType}

// HeaderTemplate renders the comment block written at the top of every unit.
type HeaderTemplate struct {
	tmpl *fasttemplate.Template
}

// NewHeaderTemplate parses a header such as "Generated by ip2networkd for {{ifname}}".
// Placeholders other than ifname, mac and link_type are rejected.
func NewHeaderTemplate(text string) (*HeaderTemplate, error) {
	tmpl, err := fasttemplate.NewTemplate(text, "{{", "}}")
	if err != nil {
		return nil, err
	}
	h := &HeaderTemplate{tmpl: tmpl}
	// A dry run catches unknown placeholders before any file is written.
	if _, err := h.render(iproute.Interface{}); err != nil {
		return nil, err
	}
	return h, nil
}

// ValidateHeaderTemplate reports whether text is a usable header template.
func ValidateHeaderTemplate(text string) error {
	_, err := NewHeaderTemplate(text)
	return err
}

// Render returns the header lines for iface. An empty template yields no lines.
func (h *HeaderTemplate) Render(iface iproute.Interface) []string {
	if h == nil {
		return nil
	}
	// Placeholders were checked in NewHeaderTemplate.
	text, _ := h.render(iface)
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (h *HeaderTemplate) render(iface iproute.Interface) (string, error) {
	values := map[string]string{
		HeaderTmplIfName:   iface.IfName,
		HeaderTmplMAC:      iface.Address,
		HeaderTmplLinkType: iface.LinkType,
	}
	return h.tmpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return 0, fmt.Errorf("unknown placeholder {{%s}}, supported: %s",
				tag, strings.Join(headerPlaceholders, ", "))
		}
		return w.Write([]byte(value))
	})
}
