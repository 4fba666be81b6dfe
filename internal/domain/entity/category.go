package entity

// Category es la clave de una categoría del catálogo (conjunto cerrado).
type Category string

const (
	CategoryPanels       Category = "panels"
	CategoryInverters    Category = "inverters"
	CategoryBatteries    Category = "batteries"
	CategoryFans         Category = "fans"
	CategoryStreetLights Category = "street lights"
	CategoryFloodLights  Category = "flood lights"
	CategoryAccessories  Category = "accessories"
)

// CategoryDescriptor configuración estática de presentación de una categoría.
type CategoryDescriptor struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}

var categories = []CategoryDescriptor{
	{Key: CategoryPanels, Label: "Paneles solares", Icon: "solar-panel"},
	{Key: CategoryInverters, Label: "Inversores", Icon: "bolt"},
	{Key: CategoryBatteries, Label: "Baterías", Icon: "battery-full"},
	{Key: CategoryFans, Label: "Ventiladores", Icon: "fan"},
	{Key: CategoryStreetLights, Label: "Alumbrado público", Icon: "road"},
	{Key: CategoryFloodLights, Label: "Reflectores", Icon: "lightbulb"},
	{Key: CategoryAccessories, Label: "Accesorios", Icon: "plug"},
}

// Categories devuelve las categorías conocidas en su orden de presentación.
func Categories() []CategoryDescriptor {
	out := make([]CategoryDescriptor, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory devuelve el descriptor de la categoría y si es conocida.
func LookupCategory(c Category) (CategoryDescriptor, bool) {
	for _, d := range categories {
		if d.Key == c {
			return d, true
		}
	}
	return CategoryDescriptor{}, false
}

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	_, ok := LookupCategory(c)
	return ok
}
