package catalog

import "yunix/internal/domain"

// allProducts is the boutique collection, maintained by the data-authoring
// side and compiled in. Order matters: it is the baseline for the featured
// sort.
var allProducts = []domain.Product{
	{
		ID:            1,
		Name:          "Emerald Elegance Aso-Ebi",
		Category:      "asoebi-wears",
		CategoryName:  "Asoebi Wears",
		Price:         185000,
		OriginalPrice: 220000,
		Images:        []string{"products/emerald-asoebi/main.jpg", "products/emerald-asoebi/alt-1.jpg", "products/emerald-asoebi/alt-2.jpg"},
		Rating:        4.9,
		Reviews:       24,
		IsNew:         true,
		Description:   "Experience luxury with our stunning Emerald Elegance Aso-Ebi, a masterpiece of Nigerian fashion craftsmanship. This exquisite traditional outfit features intricate gold beadwork meticulously hand-embroidered by skilled artisans, creating a breathtaking pattern that catches the light beautifully. Made from premium quality Ankara fabric with superior draping properties, this ensemble is perfect for weddings, owambe parties, and special celebrations. The modern tailoring ensures a flattering fit while honoring traditional Nigerian style.",
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Emerald", "Navy", "Burgundy"},
		InStock:       true,
		StockCount:    5,
		Tags:          []string{"luxury", "traditional", "beadwork", "wedding", "owambe", "Nigerian fashion"},
	},
	{
		ID:           2,
		Name:         "Vintage Lace Corset",
		Category:     "corset",
		CategoryName: "Corset",
		Price:        45000,
		Images:       []string{"products/lace-corset/main.jpg", "products/lace-corset/alt-1.jpg"},
		Rating:       4.8,
		Reviews:      22,
		Description:  "Discover timeless elegance with our handcrafted Vintage Lace Corset, expertly designed to create the perfect silhouette. This stunning corset features premium quality vintage lace with delicate floral patterns and intricate detailing that exudes sophistication. Constructed with durable boning for excellent support and shape retention, it includes adjustable back lacing for a customizable fit that flatters every body type. Ideal for special occasions, photoshoots, bridal wear, or adding a touch of elegance to your evening ensemble.",
		Sizes:        []string{"XS", "S", "M", "L"},
		Colors:       []string{"Ivory", "Black", "Blush"},
		InStock:      true,
		Tags:         []string{"vintage", "lace", "fitted", "bridal", "elegant", "handcrafted"},
	},
	{
		ID:           3,
		Name:         "Executive Power Suit",
		Category:     "corporate-wears",
		CategoryName: "Corporate Wears",
		Price:        85000,
		Images:       []string{"products/power-suit/main.jpg", "products/power-suit/alt-1.jpg"},
		Rating:       4.7,
		Reviews:      33,
		IsNew:        true,
		Description:  "Command attention and confidence with our Executive Power Suit, professionally tailored for the modern Nigerian businesswoman. This sophisticated two-piece ensemble is crafted from premium wool-blend fabric that resists wrinkles and maintains its sharp appearance throughout your busy workday. The blazer features structured shoulders, a flattering cut, and quality lining for comfort and durability. Perfect for important meetings, corporate events, presentations, and any professional setting where you need to make a lasting impression.",
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"Charcoal", "Navy", "Black"},
		InStock:      true,
		StockCount:   8,
		Tags:         []string{"professional", "tailored", "modern", "corporate", "business", "executive"},
	},
	{
		ID:           4,
		Name:         "Summer Casual Dress",
		Category:     "ready-to-wear",
		CategoryName: "Ready to Wear",
		Price:        25000,
		Images:       []string{"products/summer-dress/main.jpg", "products/summer-dress/alt-1.jpg"},
		Rating:       4.5,
		Reviews:      41,
		Description:  "Embrace effortless style with our Summer Casual Dress, designed for the modern woman who values both comfort and elegance. This versatile ready-to-wear piece is crafted from breathable, high-quality cotton fabric that keeps you cool and comfortable all day long. The flattering cut suits various body types, while the timeless design makes it perfect for multiple occasions, from casual brunches to evening gatherings. Easy to care for and wrinkle-resistant, this is your go-to dress for everyday elegance.",
		Sizes:        []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors:       []string{"Coral", "White", "Navy"},
		InStock:      true,
		Tags:         []string{"casual", "comfortable", "versatile", "everyday", "cotton"},
	},
	{
		ID:           5,
		Name:         "Royal Blue Bubu",
		Category:     "bubu",
		CategoryName: "Bubu",
		Price:        75000,
		Images:       []string{"products/royal-bubu/main.jpg", "products/royal-bubu/alt-1.jpg", "products/royal-bubu/alt-2.jpg"},
		Rating:       4.9,
		Reviews:      17,
		IsBestseller: true,
		Description:  "Celebrate Nigerian heritage with our Royal Blue Bubu, a stunning traditional garment that beautifully blends cultural authenticity with contemporary design. This magnificent piece features exquisite embroidery work done by master craftsmen, showcasing intricate patterns that tell a story of tradition and artistry. The flowing silhouette offers both comfort and elegance, making it perfect for cultural events, festivals, religious ceremonies, and special celebrations. The rich royal blue color is complemented by gold and purple accents, creating a regal appearance.",
		Sizes:        []string{"M", "L", "XL", "XXL"},
		Colors:       []string{"Royal Blue", "Gold", "Purple"},
		InStock:      true,
		StockCount:   3,
		Tags:         []string{"traditional", "embroidery", "elegant", "cultural", "festive"},
	},
	{
		ID:           6,
		Name:         "Silk Bridal Robe",
		Category:     "bridal-robe",
		CategoryName: "Bridal Robe",
		Price:        35000,
		Images:       []string{"products/silk-robe/main.jpg", "products/silk-robe/alt-1.jpg"},
		Rating:       4.7,
		Reviews:      15,
		Description:  "Indulge in luxury on your special day with our Silk Bridal Robe, the perfect addition to your bridal preparations. Crafted from 100% pure silk with delicate lace trim, this exquisite robe feels incredibly soft against your skin while looking absolutely stunning in photographs. The elegant design features a flattering cut that suits all body types, with a secure tie closure and comfortable fit. Ideal for getting ready on your wedding day, bridal photoshoots, or as a thoughtful gift for bridesmaids.",
		Sizes:        []string{"XS", "S", "M", "L"},
		Colors:       []string{"Ivory", "Champagne", "Blush"},
		InStock:      false,
		Tags:         []string{"bridal", "silk", "luxurious", "wedding", "gift"},
	},
	{
		ID:           7,
		Name:         "Champagne Dreams Wedding Gown",
		Category:     "wedding-gowns",
		CategoryName: "Wedding Gowns",
		Price:        450000,
		Images:       []string{"products/champagne-gown/main.jpg", "products/champagne-gown/alt-1.jpg", "products/champagne-gown/alt-2.jpg"},
		Rating:       5.0,
		Reviews:      18,
		IsBestseller: true,
		Description:  "Make your wedding day truly unforgettable with our Champagne Dreams Wedding Gown, an exquisite masterpiece that combines traditional elegance with modern sophistication. This breathtaking gown features layers of the finest imported lace, hand-beaded with thousands of delicate crystals that shimmer with every movement. The contemporary silhouette flatters your figure while maintaining a classic bridal aesthetic. Each gown is custom-made to your measurements by our skilled team of bridal specialists.",
		Sizes:        []string{"XS", "S", "M", "L", "XL"},
		Colors:       []string{"Champagne", "Ivory", "Off-White"},
		InStock:      true,
		StockCount:   2,
		Tags:         []string{"wedding", "luxury", "custom", "bridal", "lace", "beaded"},
	},
	{
		ID:           8,
		Name:         "Ankara Print Midi Dress",
		Category:     "ready-to-wear",
		CategoryName: "Ready to Wear",
		Price:        35000,
		Images:       []string{"products/ankara-midi/main.jpg", "products/ankara-midi/alt-1.jpg"},
		Rating:       4.6,
		Reviews:      28,
		IsNew:        true,
		Description:  "Celebrate African culture and contemporary fashion with our Ankara Print Midi Dress, a vibrant statement piece that showcases Nigeria's rich textile heritage. This eye-catching dress features authentic Ankara fabric with bold, colorful patterns that reflect traditional African artistry. The midi length offers versatility and sophistication, while the modern cut ensures a flattering fit for various body types. Perfect for weddings, parties, church services, or any occasion where you want to stand out with confidence and style.",
		Sizes:        []string{"S", "M", "L", "XL"},
		Colors:       []string{"Multi", "Blue", "Red"},
		InStock:      true,
		StockCount:   12,
		Tags:         []string{"ankara", "colorful", "african", "cultural", "versatile", "midi"},
	},
}
