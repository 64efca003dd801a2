package inventory

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestListStartingGear(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/inventory")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wooden Sword")
	assert.Contains(t, w.Body.String(), "Herbs")
	assert.Contains(t, w.Body.String(), `data-testid="inventory-item-wooden-sword"`)
}

func TestStashItemHighlightsNewEntry(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/inventory", url.Values{"itemName": {"Health Potion"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Health Potion")
	assert.Contains(t, w.Body.String(), `data-testid="inventory-item-health-potion"`)
	assert.Contains(t, w.Body.String(), "bg-green-900/40")
}

func TestStashItemRequiresName(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/inventory", url.Values{"itemName": {"   "}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEquipItem(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PutForm(h, "/inventory/equip/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Equipped: Wooden Sword")
	assert.Contains(t, w.Body.String(), `data-testid="equipped-wooden-sword"`)
}

func TestEquipUnknownItem(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PutForm(h, "/inventory/equip/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Item not found")
}

func TestDropItemRemovesIt(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Delete(h, "/inventory/item/2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Herbs")
	assert.Contains(t, w.Body.String(), "Wooden Sword")
}

func TestDropEquippedItemClearsSlot(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	labtest.PutForm(h, "/inventory/equip/1", nil)
	w := labtest.Delete(h, "/inventory/item/1")

	assert.Equal(t, http.StatusOK, w.Code)
	app.mu.Lock()
	defer app.mu.Unlock()
	assert.Zero(t, app.equippedID)
}

func TestDropUnknownItem(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Delete(h, "/inventory/item/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTreasureChestOffersLoot(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/treasure-chest")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-testid="loot-health-potion"`)
	assert.Contains(t, w.Body.String(), `data-testid="loot-gold-coins"`)
	assert.Contains(t, w.Body.String(), `data-testid="loot-ancient-map"`)
}
