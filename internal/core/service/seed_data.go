package service

import "github.com/sonnasweet/ordering-system/internal/core/domain"

// schemaProcedures lists the schema-creation RPCs, one per logical table.
var schemaProcedures = []string{
	"create_users_table",
	"create_categories_table",
	"create_menu_items_table",
	"create_orders_table",
	"create_order_items_table",
}

// seedCategories is the fixed reference catalog. Name is the upsert key.
var seedCategories = []domain.Category{
	{Name: "Cakes", Description: "Delicious handcrafted cakes for every occasion", ImageURL: "/assets/cakes-category.jpg", SortOrder: 1, IsActive: true},
	{Name: "Pizza", Description: "Authentic wood-fired pizzas with fresh ingredients", ImageURL: "/assets/pizza-category.jpg", SortOrder: 2, IsActive: true},
	{Name: "Burgers", Description: "Juicy burgers made with premium ingredients", ImageURL: "/assets/burgers-category.jpg", SortOrder: 3, IsActive: true},
	{Name: "Pasta", Description: "Traditional Italian pasta dishes", ImageURL: "/assets/pasta-category.jpg", SortOrder: 4, IsActive: true},
	{Name: "Cold Drinks", Description: "Refreshing beverages to quench your thirst", ImageURL: "/assets/cold-drinks-category.jpg", SortOrder: 5, IsActive: true},
	{Name: "Hot Drinks", Description: "Warming beverages for any time of day", ImageURL: "/assets/hot-drinks-category.jpg", SortOrder: 6, IsActive: true},
}

// seedMenuItem pairs a menu item with the category name it belongs to; the
// seeder resolves the name to the category id at run time.
type seedMenuItem struct {
	item     domain.MenuItem
	category string
}

var seedMenuItems = []seedMenuItem{
	{category: "Cakes", item: domain.MenuItem{
		Name:            "Chocolate Birthday Cake",
		Description:     "Rich chocolate cake with buttercream frosting, perfect for celebrations",
		Price:           25.99,
		ImageURL:        "/assets/birthday-cake.jpg",
		IsAvailable:     true,
		Ingredients:     []string{"flour", "cocoa powder", "eggs", "butter", "sugar"},
		Allergens:       []string{"gluten", "eggs", "dairy"},
		PreparationTime: 45,
	}},
	{category: "Cakes", item: domain.MenuItem{
		Name:            "Red Velvet Cake",
		Description:     "Classic red velvet with cream cheese frosting",
		Price:           28.99,
		IsAvailable:     true,
		Ingredients:     []string{"flour", "cocoa powder", "red food coloring", "buttermilk"},
		Allergens:       []string{"gluten", "eggs", "dairy"},
		PreparationTime: 50,
	}},
	{category: "Pizza", item: domain.MenuItem{
		Name:            "Margherita Pizza",
		Description:     "Classic pizza with fresh mozzarella, tomatoes, and basil",
		Price:           16.99,
		IsAvailable:     true,
		Ingredients:     []string{"pizza dough", "mozzarella", "tomatoes", "basil"},
		Allergens:       []string{"gluten", "dairy"},
		PreparationTime: 20,
	}},
	{category: "Pizza", item: domain.MenuItem{
		Name:            "Pepperoni Pizza",
		Description:     "Traditional pepperoni pizza with mozzarella cheese",
		Price:           18.99,
		IsAvailable:     true,
		Ingredients:     []string{"pizza dough", "pepperoni", "mozzarella", "tomato sauce"},
		Allergens:       []string{"gluten", "dairy"},
		PreparationTime: 22,
	}},
	{category: "Burgers", item: domain.MenuItem{
		Name:            "Classic Beef Burger",
		Description:     "Juicy beef patty with lettuce, tomato, and our special sauce",
		Price:           12.99,
		IsAvailable:     true,
		Ingredients:     []string{"beef patty", "lettuce", "tomato", "onion", "pickle"},
		Allergens:       []string{"gluten"},
		PreparationTime: 15,
	}},
	{category: "Cold Drinks", item: domain.MenuItem{
		Name:            "Fresh Lemonade",
		Description:     "Freshly squeezed lemonade with a hint of mint",
		Price:           4.99,
		IsAvailable:     true,
		Ingredients:     []string{"lemons", "water", "sugar", "mint"},
		PreparationTime: 5,
	}},
	{category: "Hot Drinks", item: domain.MenuItem{
		Name:            "Cappuccino",
		Description:     "Rich espresso with steamed milk and foam",
		Price:           5.99,
		IsAvailable:     true,
		Ingredients:     []string{"espresso", "milk"},
		Allergens:       []string{"dairy"},
		PreparationTime: 8,
	}},
}

// expectedBuckets is the fixed set of storage buckets the verifier audits.
var expectedBuckets = []string{"menu-images", "avatars", "order-attachments"}
