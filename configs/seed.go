package configs

import (
	"github.com/julirosales079/parrillerosfast/entity"
)

// SeedCatalog loads the fixed menu the kiosk sells. The catalog is
// read-only at runtime; re-running the seed is idempotent.
func SeedCatalog() error {
	db := DB()

	categories := []entity.Category{
		{Slug: "burgers", Name: "Hamburguesas", Icon: "🍔", SortOrder: 1},
		{Slug: "hotdogs", Name: "Perros Calientes", Icon: "🌭", SortOrder: 2},
		{Slug: "salchipapas", Name: "Salchipapas", Icon: "🍟", SortOrder: 3},
		{Slug: "combos", Name: "Combos", Icon: "🥤", SortOrder: 4},
		{Slug: "drinks", Name: "Bebidas", Icon: "🧃", SortOrder: 5},
	}
	for _, c := range categories {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Slug: c.Slug}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.Category{}).Where("slug = ?", c.Slug).
			Updates(map[string]any{"name": c.Name, "icon": c.Icon, "sort_order": c.SortOrder}).Error; err != nil {
			return err
		}
	}

	items := []entity.MenuItem{
		{Name: "Parrillera Clásica", Description: "Carne artesanal a la parrilla, queso, lechuga, tomate y salsa de la casa", Price: 15000, PriceWithFries: i64(18000), Category: "burgers", Customizable: true, Badges: []string{"popular"}},
		{Name: "Parrillera Doble", Description: "Doble carne a la parrilla, doble queso y tocineta", Price: 21000, PriceWithFries: i64(24000), Category: "burgers", Customizable: true},
		{Name: "Parrillera BBQ", Description: "Carne a la parrilla, aros de cebolla, tocineta y salsa BBQ ahumada", Price: 18500, PriceWithFries: i64(21500), Category: "burgers", Customizable: true},
		{Name: "Parrillera Mexicana", Description: "Carne a la parrilla, guacamole, jalapeños y pico de gallo", Price: 19000, PriceWithFries: i64(22000), Category: "burgers", Customizable: true, Badges: []string{"picante"}},
		{Name: "Parrillera de Pollo", Description: "Pechuga a la parrilla, queso y miel mostaza", Price: 16000, PriceWithFries: i64(19000), Category: "burgers", Customizable: true},
		{Name: "Perro Clásico", Description: "Salchicha americana, papa ripio, queso y salsas", Price: 10000, Category: "hotdogs", Customizable: true},
		{Name: "Perro Especial", Description: "Salchicha, tocineta, queso gratinado y huevo de codorniz", Price: 13500, Category: "hotdogs", Customizable: true},
		{Name: "Salchipapa Tradicional", Description: "Papa a la francesa con salchicha y salsas de la casa", Price: 14000, Category: "salchipapas", Customizable: true},
		{Name: "Salchipapa Parrilleros", Description: "Papa a la francesa, carne desmechada, maíz tierno y queso", Price: 19500, Category: "salchipapas", Customizable: true, Badges: []string{"nuevo"}},
		{Name: "Combo Familiar", Description: "4 hamburguesas clásicas, papas familiares y gaseosa 1.5L", Price: 62000, Category: "combos", Customizable: false},
		{Name: "Gaseosa Personal", Description: "350 ml", Price: 4000, Category: "drinks", Customizable: false},
		{Name: "Limonada Natural", Description: "Vaso 16 oz", Price: 6000, Category: "drinks", Customizable: false},
		{Name: "Jugo Natural", Description: "Mora, lulo o maracuyá", Price: 6500, Category: "drinks", Customizable: false},
	}
	for _, it := range items {
		var count int64
		db.Model(&entity.MenuItem{}).Where("name = ?", it.Name).Count(&count)
		if count > 0 {
			continue
		}
		row := it
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	// add-on catalog; the "AD " prefix is stripped on receipts
	options := []entity.CustomizationOption{
		{Name: "AD Tocineta", Price: 3000, SortOrder: 1},
		{Name: "AD Queso Cheddar", Price: 2500, SortOrder: 2},
		{Name: "AD Huevo Frito", Price: 1500, SortOrder: 3},
		{Name: "AD Piña Calada", Price: 2000, SortOrder: 4},
		{Name: "AD Maduritos", Price: 2800, SortOrder: 5},
		{Name: "AD Carne Extra", Price: 6000, SortOrder: 6},
		{Name: "AD Aros de Cebolla", Price: 3500, SortOrder: 7},
		{Name: "Sin Cebolla", Price: 0, SortOrder: 8},
		{Name: "Sin Tomate", Price: 0, SortOrder: 9},
	}
	for _, op := range options {
		var count int64
		db.Model(&entity.CustomizationOption{}).Where("name = ?", op.Name).Count(&count)
		if count > 0 {
			continue
		}
		row := op
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedLocations loads the three stores orders can be routed to.
func SeedLocations() error {
	db := DB()

	locations := []entity.Location{
		{
			Slug: "sede-tamasagra", Name: "Parrilleros Tamasagra",
			Address: "Manzana 9A casa 1 - Tamasagra", Phone: "301 222 2098",
			Whatsapp: "+573012222098", Neighborhood: "Tamasagra",
			DeliveryZones: []string{"Cualquier sitio de la ciudad"},
		},
		{
			Slug: "sede-san-ignacio", Name: "Parrilleros San Ignacio",
			Address: "Cra 32 # 14 - 84 - San Ignacio", Phone: "316 606 0005",
			Whatsapp: "+573166060005", Neighborhood: "San Ignacio",
			DeliveryZones: []string{"Cualquier sitio de la ciudad"},
		},
		{
			Slug: "sede-las-cuadras", Name: "Parrilleros Cuadras",
			Address: "Calle 20 # 31C - 38 - Las Cuadras", Phone: "313 341 9733",
			Whatsapp: "+573133419733", Neighborhood: "Las Cuadras",
			DeliveryZones: []string{"Cualquier sitio de la ciudad"},
		},
	}
	for _, loc := range locations {
		var count int64
		db.Model(&entity.Location{}).Where("slug = ?", loc.Slug).Count(&count)
		if count > 0 {
			continue
		}
		row := loc
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func i64(v int64) *int64 { return &v }
