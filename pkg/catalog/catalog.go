// Package catalog holds the static reference data that parameterizes
// dataset generation: categories, brands, product name templates,
// price ranges and the text/name pools shared by every generator.
// A Catalog is built once and never mutated afterwards.
package catalog

// PriceRange bounds product prices for one subcategory, in dollars.
type PriceRange struct {
	Min float64
	Max float64
}

// Subcategory groups the name templates and pricing for one shelf
// within a category. Template pools may be smaller than the number of
// products requested; generators cycle through them in that case.
type Subcategory struct {
	Name      string
	Price     PriceRange
	Templates []string
}

// Category is one top-level product department.
type Category struct {
	Name          string
	Weight        float64 // relative share of the generated products
	Brands        []string
	Subcategories []Subcategory
}

// ReviewTemplates holds review phrasing for one category, bucketed by
// sentiment. "{product}" and "{category}" are substituted at
// generation time.
type ReviewTemplates struct {
	Category string
	Positive []string
	Neutral  []string
	Negative []string
}

// Catalog is the full set of lookup tables. Everything is stored in
// slices so that value selection order is stable run to run.
type Catalog struct {
	Categories   []Category
	PriceEndings []float64

	FirstNames     []string
	LastNames      []string
	EmailDomains   []string
	StreetNames    []string
	Cities         []string
	States         []string
	PaymentMethods []string

	Reviews []ReviewTemplates
}

// CategoryNames returns the category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// ReviewsFor returns the review template set for a category, falling
// back to the first set when the category has no templates of its own.
func (c *Catalog) ReviewsFor(category string) ReviewTemplates {
	for _, r := range c.Reviews {
		if r.Category == category {
			return r
		}
	}
	return c.Reviews[0]
}

// TemplateCount reports the total number of distinct product name
// templates across the whole catalog.
func (c *Catalog) TemplateCount() int {
	n := 0
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			n += len(sub.Templates)
		}
	}
	return n
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard",
	"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen",
	"Christopher", "Lisa", "Matthew", "Nancy", "Anthony", "Betty",
	"Mark", "Margaret", "Steven", "Sandra", "Andrew", "Ashley", "Paul",
	"Kimberly", "Joshua", "Emily", "Kenneth", "Donna", "Kevin", "Michelle",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
	"Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
	"Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen",
	"King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"icloud.com", "aol.com",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Park Blvd",
	"Elm St", "Washington Ave", "Lake Dr", "Hill Rd", "Sunset Blvd",
	"River Rd", "Church St", "Highland Ave", "Spring St", "Franklin Ave",
}

var cities = []string{
	"Springfield", "Riverside", "Fairview", "Franklin", "Greenville",
	"Bristol", "Clinton", "Salem", "Madison", "Georgetown",
	"Arlington", "Ashland", "Dover", "Oxford", "Burlington",
}

var states = []string{
	"CA", "TX", "NY", "FL", "IL", "PA", "OH", "GA", "NC", "MI",
	"WA", "AZ", "CO", "OR", "MA",
}

var paymentMethods = []string{
	"Credit Card", "PayPal", "Apple Pay", "Google Pay",
}

// priceEndings are the canonical psychological price endings.
var priceEndings = []float64{0.99, 0.95, 0.00, 0.49, 0.79}

// Default builds the stock catalog: six departments with real-world
// brands and name pools, review phrasing for each, and the shared user
// pools above.
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name:   "Electronics",
				Weight: 0.25,
				Brands: []string{"Apple", "Samsung", "Sony", "Bose", "Canon", "Logitech", "JBL", "Dell"},
				Subcategories: []Subcategory{
					{
						Name:  "Smartphones",
						Price: PriceRange{299, 1299},
						Templates: []string{
							"iPhone 15 Pro", "Galaxy S24 Ultra", "Pixel 8",
							"Galaxy A54", "iPhone SE", "Xperia 1 V",
						},
					},
					{
						Name:  "Laptops",
						Price: PriceRange{399, 2999},
						Templates: []string{
							"MacBook Pro 16\"", "XPS 13", "ThinkPad X1 Carbon",
							"MacBook Air 13\"", "Spectre x360", "ROG Strix G16",
						},
					},
					{
						Name:  "Headphones",
						Price: PriceRange{29, 499},
						Templates: []string{
							"AirPods Pro", "WH-1000XM5", "QuietComfort 45",
							"Live Pro 2", "Beats Studio3", "HD 660S",
						},
					},
					{
						Name:  "Accessories",
						Price: PriceRange{9, 199},
						Templates: []string{
							"USB-C Hub", "Wireless Charger", "Bluetooth Speaker",
							"Lightning Cable", "Webcam", "Mechanical Keyboard",
						},
					},
				},
			},
			{
				Name:   "Clothing",
				Weight: 0.22,
				Brands: []string{"Nike", "Adidas", "Levi's", "Uniqlo", "Zara", "Champion", "Puma", "Gap"},
				Subcategories: []Subcategory{
					{
						Name:  "Tops",
						Price: PriceRange{15, 89},
						Templates: []string{
							"Classic T-Shirt", "Polo Shirt", "Hoodie",
							"Sweater", "Button-Down Shirt", "Tank Top",
						},
					},
					{
						Name:  "Bottoms",
						Price: PriceRange{25, 129},
						Templates: []string{
							"Slim Fit Jeans", "Chinos", "Joggers",
							"Cargo Pants", "Running Shorts", "Leggings",
						},
					},
					{
						Name:  "Shoes",
						Price: PriceRange{39, 199},
						Templates: []string{
							"Air Force 1", "Stan Smith", "Ultraboost 22",
							"Blazer Mid", "Gazelle", "Superstar",
						},
					},
					{
						Name:  "Outerwear",
						Price: PriceRange{49, 299},
						Templates: []string{
							"Denim Jacket", "Bomber Jacket", "Windbreaker",
							"Trench Coat", "Puffer Jacket", "Blazer",
						},
					},
				},
			},
			{
				Name:   "Beauty",
				Weight: 0.15,
				Brands: []string{"L'Oréal", "Maybelline", "MAC", "CeraVe", "The Ordinary", "Neutrogena", "Clinique", "Fenty Beauty"},
				Subcategories: []Subcategory{
					{
						Name:  "Skincare",
						Price: PriceRange{8, 89},
						Templates: []string{
							"Foaming Facial Cleanser", "Daily Moisturizer",
							"Niacinamide Serum", "Hydrating Toner",
							"Mineral Sunscreen SPF 50", "Retinol Eye Cream",
						},
					},
					{
						Name:  "Makeup",
						Price: PriceRange{5, 79},
						Templates: []string{
							"True Match Foundation", "Great Lash Mascara",
							"Ruby Woo Lipstick", "Naked Eyeshadow Palette",
							"Setting Powder", "Liquid Concealer",
						},
					},
					{
						Name:  "Fragrance",
						Price: PriceRange{19, 199},
						Templates: []string{
							"Eau de Parfum 50ml", "Body Spray",
							"Cologne", "Rollerball Duo",
						},
					},
				},
			},
			{
				Name:   "Home",
				Weight: 0.15,
				Brands: []string{"IKEA", "West Elm", "KitchenAid", "Dyson", "Instant Pot", "Philips", "Shark", "Nespresso"},
				Subcategories: []Subcategory{
					{
						Name:  "Furniture",
						Price: PriceRange{49, 899},
						Templates: []string{
							"BILLY Bookcase", "HEMNES Dresser", "Coffee Table",
							"Office Chair", "Nightstand", "Dining Table",
						},
					},
					{
						Name:  "Kitchen",
						Price: PriceRange{29, 499},
						Templates: []string{
							"Stand Mixer", "Air Fryer", "Espresso Machine",
							"Knife Set", "Blender", "Cast Iron Skillet",
						},
					},
					{
						Name:  "Bedding",
						Price: PriceRange{24, 299},
						Templates: []string{
							"Organic Cotton Sheet Set", "Down Comforter",
							"Memory Foam Pillow", "Duvet Cover",
							"Throw Blanket", "Mattress Topper",
						},
					},
				},
			},
			{
				Name:   "Sports",
				Weight: 0.13,
				Brands: []string{"Nike", "Under Armour", "Patagonia", "The North Face", "Columbia", "Yeti", "Wilson", "ASICS"},
				Subcategories: []Subcategory{
					{
						Name:  "Fitness",
						Price: PriceRange{19, 199},
						Templates: []string{
							"Adjustable Dumbbells", "Yoga Mat", "Kettlebell",
							"Resistance Bands", "Foam Roller", "Jump Rope",
						},
					},
					{
						Name:  "Outdoor",
						Price: PriceRange{29, 299},
						Templates: []string{
							"Better Sweater Jacket", "2-Person Tent",
							"Denali Fleece Jacket", "Sleeping Bag",
							"Hiking Backpack", "Insulated Tumbler",
						},
					},
					{
						Name:  "Running",
						Price: PriceRange{24, 199},
						Templates: []string{
							"Gel-Kayano 30", "Running Shorts", "GPS Watch",
							"Compression Socks", "Hydration Belt", "Running Cap",
						},
					},
				},
			},
			{
				Name:   "Toys",
				Weight: 0.10,
				Brands: []string{"LEGO", "Mattel", "Hasbro", "Fisher-Price", "Melissa & Doug", "VTech", "Nerf", "Hot Wheels"},
				Subcategories: []Subcategory{
					{
						Name:  "Building Sets",
						Price: PriceRange{19, 199},
						Templates: []string{
							"Creator 3-in-1 Set", "City Space Station",
							"Technic Race Car", "Magnetic Tiles Set",
							"Marble Run", "Architecture Skyline",
						},
					},
					{
						Name:  "Board Games",
						Price: PriceRange{24, 149},
						Templates: []string{
							"Monopoly Classic", "Scrabble", "Chess Set",
							"Connect 4", "Uno Deluxe", "Candy Land",
						},
					},
					{
						Name:  "Dolls",
						Price: PriceRange{14, 79},
						Templates: []string{
							"Barbie Fashionista Doll", "Baby Doll Set",
							"Doll House", "Princess Doll", "Doll Stroller",
						},
					},
				},
			},
		},
		PriceEndings:   priceEndings,
		FirstNames:     firstNames,
		LastNames:      lastNames,
		EmailDomains:   emailDomains,
		StreetNames:    streetNames,
		Cities:         cities,
		States:         states,
		PaymentMethods: paymentMethods,
		Reviews:        defaultReviews,
	}
}
