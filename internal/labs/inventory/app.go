// Package inventory is the adventurer's backpack lesson: full CRUD over
// an item list, an equip slot, and a lootable treasure chest served for
// hx-select extraction.
package inventory

import (
	"html"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// Item is one backpack entry.
type Item struct {
	Name string
	Slug string
}

// App holds the inventory lesson state.
type App struct {
	mu         sync.Mutex
	items      map[int]Item
	equippedID int // 0 means nothing equipped
	nextID     int
}

// New returns a backpack holding the starting gear.
func New() *App {
	return &App{
		items: map[int]Item{
			1: {Name: "Wooden Sword", Slug: "wooden-sword"},
			2: {Name: "Herbs", Slug: "herbs"},
		},
		nextID: 3,
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugSeparators = regexp.MustCompile(`[\s-]+`)

// slugify turns an item name into the hyphenated form used for
// data-testid attributes: "Health Potion" -> "health-potion".
func slugify(text string) string {
	text = strings.ToLower(text)
	text = nonSlugChars.ReplaceAllString(text, "")
	text = slugSeparators.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// Routes mounts the inventory endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/inventory", a.handleList)
	r.Post("/inventory", a.handleCreate)
	r.Put("/inventory/equip/{itemID}", a.handleEquip)
	r.Delete("/inventory/item/{itemID}", a.handleDrop)
	r.Get("/treasure-chest", a.handleTreasureChest)
}

// listFragment renders the whole inventory; newItemID highlights a just
// added entry, zero highlights nothing.
func (a *App) listFragment(newItemID int) string {
	ids := make([]int, 0, len(a.items))
	for id := range a.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString(`<ul id="inventory-list" data-testid="inventory-list">`)
	if len(ids) == 0 {
		b.WriteString(`<li class="text-slate-400">Your backpack is empty.</li>`)
	}
	for _, id := range ids {
		item := a.items[id]
		highlight := ""
		if id == newItemID {
			highlight = ` class="bg-green-900/40"`
		}
		b.WriteString(`<li` + highlight + ` data-testid="inventory-item-` + item.Slug + `">` +
			html.EscapeString(item.Name) +
			` <button hx-put="inventory/equip/` + strconv.Itoa(id) + `" hx-target="#equipped-slot">Equip</button>` +
			` <button hx-delete="inventory/item/` + strconv.Itoa(id) + `" hx-target="#inventory-list" hx-swap="outerHTML">Drop</button></li>`)
	}
	b.WriteString("</ul>")
	return b.String()
}

func equippedFragment(item Item) string {
	return `<div id="equipped-slot" data-testid="equipped-` + item.Slug + `">
  <p class="font-bold">Equipped: ` + html.EscapeString(item.Name) + `</p>
</div>`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	list := a.listFragment(0)
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Adventurer's Inventory</h1>
<form hx-post="inventory" hx-target="#inventory-list" hx-swap="outerHTML" class="mt-4">
  <input type="text" name="itemName" placeholder="Item name" required>
  <button type="submit">Stash item</button>
</form>
` + list + `
<div id="equipped-slot" class="mt-4">Nothing equipped.</div>
<button hx-get="treasure-chest" hx-target="#inventory-list" hx-select="[data-testid=loot-health-potion]" hx-swap="beforeend">Open the treasure chest</button>`
	render.Page(w, r, "Adventurer's Inventory", page)
}

func (a *App) handleList(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	list := a.listFragment(0)
	a.mu.Unlock()
	render.Fragment(w, list)
}

func (a *App) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the item form.</p>`)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("itemName"))
	if name == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">An item name is required.</p>`)
		return
	}

	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.items[id] = Item{Name: name, Slug: slugify(name)}
	list := a.listFragment(id)
	a.mu.Unlock()

	render.Fragment(w, list)
}

func (a *App) handleEquip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		render.FragmentStatus(w, http.StatusNotFound, "Item not found")
		return
	}

	a.mu.Lock()
	item, ok := a.items[id]
	if ok {
		a.equippedID = id
	}
	a.mu.Unlock()

	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "Item not found")
		return
	}
	render.Fragment(w, equippedFragment(item))
}

func (a *App) handleDrop(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		render.FragmentStatus(w, http.StatusNotFound, "Item not found")
		return
	}

	a.mu.Lock()
	_, ok := a.items[id]
	if ok {
		delete(a.items, id)
		// Dropping the equipped item empties the equip slot too.
		if a.equippedID == id {
			a.equippedID = 0
		}
	}
	list := a.listFragment(0)
	a.mu.Unlock()

	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "Item not found")
		return
	}
	render.Fragment(w, list)
}

// handleTreasureChest serves several loot entries; the client extracts
// a single one with hx-select.
func (a *App) handleTreasureChest(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div id="treasure-chest">
  <li data-testid="loot-health-potion">Health Potion</li>
  <li data-testid="loot-gold-coins">Gold Coins</li>
  <li data-testid="loot-ancient-map">Ancient Map</li>
</div>`)
}
