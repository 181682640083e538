// Package catalog holds the static game content: foods, toys, cosmetics
// and mission definitions. Content is fixed at compile time; player
// progress against it lives in the mission ledger and repositories.
package catalog

// Food restores hunger when fed to the pet. Cost is paid in coins.
type Food struct {
	ID        string
	Name      string
	Emoji     string
	Nutrition float64
	Cost      int64
}

// Toy raises fun at the price of energy when played with.
type Toy struct {
	ID         string
	Name       string
	Emoji      string
	FunValue   float64
	EnergyCost float64
	Animation  string
}

// Cosmetic is an equippable visual item. The token itself lives on chain;
// the catalog only describes it.
type Cosmetic struct {
	ID       string
	Name     string
	Emoji    string
	Cost     int64
	Category string
}

// Foods contains all purchasable food items in display order.
var Foods = []Food{
	{ID: "bamboo", Name: "Bamboo", Emoji: "🎋", Nutrition: 15, Cost: 0},
	{ID: "apple", Name: "Apple", Emoji: "🍎", Nutrition: 10, Cost: 5},
	{ID: "pizza", Name: "Pizza", Emoji: "🍕", Nutrition: 25, Cost: 20},
	{ID: "sushi", Name: "Sushi", Emoji: "🍣", Nutrition: 20, Cost: 15},
	{ID: "cookie", Name: "Cookie", Emoji: "🍪", Nutrition: 5, Cost: 2},
}

// Toys contains all toys in display order.
var Toys = []Toy{
	{ID: "ball", Name: "Ball", Emoji: "⚽", FunValue: 15, EnergyCost: 5, Animation: "bounce"},
	{ID: "duck", Name: "Ducky", Emoji: "🐤", FunValue: 10, EnergyCost: 2, Animation: "wiggle"},
	{ID: "car", Name: "Toy Car", Emoji: "🏎️", FunValue: 20, EnergyCost: 8, Animation: "spin"},
	{ID: "yarn", Name: "Yarn", Emoji: "🧶", FunValue: 12, EnergyCost: 4, Animation: "shake"},
}

// Cosmetics contains all mintable cosmetic items.
var Cosmetics = []Cosmetic{
	{ID: "top_hat", Name: "Top Hat", Emoji: "🎩", Cost: 50, Category: "hat"},
	{ID: "party_hat", Name: "Party Hat", Emoji: "🥳", Cost: 30, Category: "hat"},
	{ID: "sunglasses", Name: "Cool Shades", Emoji: "🕶️", Cost: 40, Category: "eyes"},
	{ID: "bowtie", Name: "Bow Tie", Emoji: "🎀", Cost: 25, Category: "neck"},
	{ID: "crown", Name: "Crown", Emoji: "👑", Cost: 100, Category: "hat"},
}

// FoodByID returns the food with the given ID.
func FoodByID(id string) (Food, bool) {
	for _, f := range Foods {
		if f.ID == id {
			return f, true
		}
	}
	return Food{}, false
}

// ToyByID returns the toy with the given ID.
func ToyByID(id string) (Toy, bool) {
	for _, t := range Toys {
		if t.ID == id {
			return t, true
		}
	}
	return Toy{}, false
}

// CosmeticByID returns the cosmetic with the given ID.
func CosmeticByID(id string) (Cosmetic, bool) {
	for _, c := range Cosmetics {
		if c.ID == id {
			return c, true
		}
	}
	return Cosmetic{}, false
}
