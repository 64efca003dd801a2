// Package registry wires catalog slugs to lesson constructors. It lives
// apart from package labs so the individual lessons can import labs
// without a cycle.
package registry

import (
	"github.com/hxlabs/courseware/internal/labs"
	"github.com/hxlabs/courseware/internal/labs/airport"
	"github.com/hxlabs/courseware/internal/labs/atm"
	"github.com/hxlabs/courseware/internal/labs/boutique"
	"github.com/hxlabs/courseware/internal/labs/chemlab"
	"github.com/hxlabs/courseware/internal/labs/dashboard"
	"github.com/hxlabs/courseware/internal/labs/deli"
	"github.com/hxlabs/courseware/internal/labs/diner"
	"github.com/hxlabs/courseware/internal/labs/garden"
	"github.com/hxlabs/courseware/internal/labs/inventory"
	"github.com/hxlabs/courseware/internal/labs/jukebox"
	"github.com/hxlabs/courseware/internal/labs/kitchen"
	"github.com/hxlabs/courseware/internal/labs/lego"
	"github.com/hxlabs/courseware/internal/labs/library"
	"github.com/hxlabs/courseware/internal/labs/mailroom"
	"github.com/hxlabs/courseware/internal/labs/museum"
	"github.com/hxlabs/courseware/internal/labs/newsroom"
	"github.com/hxlabs/courseware/internal/labs/postoffice"
	"github.com/hxlabs/courseware/internal/labs/registrar"
	"github.com/hxlabs/courseware/internal/labs/renovation"
	"github.com/hxlabs/courseware/internal/labs/smarthome"
	"github.com/hxlabs/courseware/internal/labs/stage"
	"github.com/hxlabs/courseware/internal/labs/vending"
)

// builders maps every catalog slug to its lesson constructor.
var builders = map[string]labs.Builder{
	"kitchen":    func() labs.App { return kitchen.New() },
	"stage":      func() labs.App { return stage.New() },
	"museum":     func() labs.App { return museum.New() },
	"dashboard":  func() labs.App { return dashboard.New() },
	"lego":       func() labs.App { return lego.New() },
	"smarthome":  func() labs.App { return smarthome.New() },
	"deli":       func() labs.App { return deli.New() },
	"registrar":  func() labs.App { return registrar.New() },
	"vending":    func() labs.App { return vending.New() },
	"airport":    func() labs.App { return airport.New() },
	"inventory":  func() labs.App { return inventory.New() },
	"postoffice": func() labs.App { return postoffice.New() },
	"diner":      func() labs.App { return diner.New() },
	"renovation": func() labs.App { return renovation.New() },
	"library":    func() labs.App { return library.New() },
	"boutique":   func() labs.App { return boutique.New() },
	"newsroom":   func() labs.App { return newsroom.New() },
	"mailroom":   func() labs.App { return mailroom.New() },
	"jukebox":    func() labs.App { return jukebox.New() },
	"chemlab":    func() labs.App { return chemlab.New() },
	"atm":        func() labs.App { return atm.New() },
	"garden":     func() labs.App { return garden.New() },
}

// Lookup returns the builder for a catalog slug.
func Lookup(slug string) (labs.Builder, bool) {
	b, ok := builders[slug]
	return b, ok
}

// Slugs returns every registered lesson slug.
func Slugs() []string {
	out := make([]string, 0, len(builders))
	for slug := range builders {
		out = append(out, slug)
	}
	return out
}
