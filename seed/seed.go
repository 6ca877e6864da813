// Package seed loads the starter catalog and demo accounts.
package seed

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type seedProduct struct {
	name        string
	description string
	price       float64
	category    string
	image       string
	featured    bool
}

var seedProducts = []seedProduct{
	{"Classic Vanilla Bean", "Light and fluffy vanilla cake with Madagascar vanilla bean buttercream", 8, "cakes", "/images/vanilla-cake.jpg", true},
	{"Dark Chocolate Truffle", "Rich Belgian chocolate cake with ganache and chocolate shavings", 9, "cakes", "/images/chocolate-cake.jpg", true},
	{"Strawberry Dream", "Fresh strawberry cake with cream cheese frosting and berry compote", 9, "cakes", "/images/strawberry-cake.jpg", true},
	{"Autumn Spice", "Pumpkin spice cake with maple cream cheese frosting - seasonal favorite", 9, "seasonal", "/images/pumpkin-cake.jpg", true},
	{"Salted Caramel", "Buttery caramel cake with sea salt buttercream and caramel drizzle", 9, "cakes", "/images/caramel-cake.jpg", false},
	{"Lemon Lavender", "Bright lemon cake with lavender buttercream - light and refreshing", 8, "cakes", "/images/lemon-cake.jpg", false},
	{"Red Velvet Classic", "Traditional red velvet with tangy cream cheese frosting", 9, "cakes", "/images/red-velvet-cake.jpg", false},
	{"Halloween Spooky Treat", "Limited edition Halloween-themed cake with festive decorations", 10, "seasonal", "/images/halloween-cake.jpg", false},
	{"Custom Creation", "Design your own cake with custom flavors, colors, and decorations", 12, "custom", "/images/custom-cake.jpg", false},
}

// Run inserts categories, products with inventory, and the demo admin and
// customer accounts. Existing rows (matched by slug/email/name) are left
// alone, so it is safe to run more than once.
func Run(db *gorm.DB) error {
	log.Println("🌱 Seeding database...")

	categories := []models.Category{
		{Name: "Signature Cakes", Slug: "cakes", SortOrder: 1},
		{Name: "Seasonal", Slug: "seasonal", SortOrder: 2},
		{Name: "Custom Orders", Slug: "custom", SortOrder: 3},
	}
	bySlug := make(map[string]string)
	for i := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", categories[i].Slug).First(&existing).Error; err == nil {
			bySlug[existing.Slug] = existing.ID
			continue
		}
		categories[i].ID = uuid.NewString()
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
		bySlug[categories[i].Slug] = categories[i].ID
	}

	for _, sp := range seedProducts {
		var existing models.Product
		if err := db.Where("name = ?", sp.name).First(&existing).Error; err == nil {
			continue
		}
		categoryID := bySlug[sp.category]
		product := models.Product{
			ID:          uuid.NewString(),
			Name:        sp.name,
			Description: sp.description,
			Price:       sp.price,
			Image:       sp.image,
			CategoryID:  &categoryID,
			Featured:    sp.featured,
			Available:   true,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			inventory := models.Inventory{
				ID:            uuid.NewString(),
				ProductID:     product.ID,
				Quantity:      0,
				LowStockAlert: 5,
			}
			return tx.Create(&inventory).Error
		})
		if err != nil {
			return err
		}
	}

	if err := ensureUser(db, "admin@sweetmeadowbakery.com", "Bakery Admin", "admin123", models.RoleAdmin); err != nil {
		return err
	}
	if err := ensureUser(db, "demo@example.com", "Demo Customer", "demo1234", models.RoleCustomer); err != nil {
		return err
	}

	log.Println("🌱 Seed complete")
	return nil
}

func ensureUser(db *gorm.DB, email, name, password string, role models.Role) error {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	return db.Create(&user).Error
}
