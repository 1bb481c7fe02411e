package store

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rewearhq/rewear/internal/model"
)

// seedState builds the demo dataset used when no saved state exists: one
// admin, four members, nine listings (eight approved, one pending and
// flagged for the moderation path) and the fixed category taxonomy.
// Timestamps are relative to now; the shape is deterministic.
func seedState(now time.Time) *model.State {
	st := model.NewState()

	genID := func() string {
		id := fmt.Sprintf("id_%d_%d", st.NextID, now.UnixMilli())
		st.NextID++
		return id
	}

	// Demo credentials only; min cost keeps first-run seeding fast.
	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			// bcrypt only fails on absurd cost/length inputs.
			slog.Error("failed to hash seed password", "error", err)
			return ""
		}
		return string(h)
	}

	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	admin := model.User{
		ID:           genID(),
		FirstName:    "Admin",
		LastName:     "User",
		Email:        "admin@rewear.example",
		PasswordHash: hash("admin-demo-pass"),
		Role:         model.RoleAdmin,
		Points:       1000,
		Avatar:       defaultAvatars[0],
		Location:     "New York, NY",
		CreatedAt:    now,
		Newsletter:   true,
		Rating:       5.0,
	}

	members := []model.User{
		{
			ID: genID(), FirstName: "Sarah", LastName: "Chen",
			Email: "sarah@example.com", PasswordHash: hash("demo-password"),
			Role: model.RoleUser, Points: 250, Avatar: defaultAvatars[1],
			Location: "San Francisco, CA", CreatedAt: daysAgo(30),
			Newsletter: true, Rating: 4.9, TotalSwaps: 23,
		},
		{
			ID: genID(), FirstName: "Emma", LastName: "Johnson",
			Email: "emma@example.com", PasswordHash: hash("demo-password"),
			Role: model.RoleUser, Points: 180, Avatar: defaultAvatars[2],
			Location: "Los Angeles, CA", CreatedAt: daysAgo(20),
			Newsletter: false, Rating: 4.7, TotalSwaps: 15,
		},
		{
			ID: genID(), FirstName: "Alex", LastName: "Rodriguez",
			Email: "alex@example.com", PasswordHash: hash("demo-password"),
			Role: model.RoleUser, Points: 320, Avatar: defaultAvatars[3],
			Location: "Chicago, IL", CreatedAt: daysAgo(45),
			Newsletter: true, Rating: 4.8, TotalSwaps: 18,
		},
		{
			ID: genID(), FirstName: "Maya", LastName: "Patel",
			Email: "maya@example.com", PasswordHash: hash("demo-password"),
			Role: model.RoleUser, Points: 95, Avatar: defaultAvatars[4],
			Location: "Austin, TX", CreatedAt: daysAgo(10),
			Newsletter: true, Rating: 4.6, TotalSwaps: 8,
		},
	}

	st.Users = append(st.Users, admin)
	st.Users = append(st.Users, members...)

	st.Items = []model.Item{
		{
			ID:          genID(),
			Title:       "Vintage Floral Summer Dress",
			Description: "Beautiful vintage floral dress perfect for summer occasions. Well maintained and ready for its next adventure.",
			Category:    "dresses", Gender: "women", Size: "M",
			Condition: model.ConditionExcellent, Brand: "Vintage Collection",
			Color: "multicolor", Material: "100% Cotton", Points: 50,
			Tags:   []string{"vintage", "floral", "summer", "casual", "feminine"},
			Images: []string{"https://images.rewear.example/items/floral-dress-1.jpg", "https://images.rewear.example/items/floral-dress-2.jpg"},
			UserID: members[0].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 45,
			ExchangeOptions: []string{"pickup", "shipping"},
			CreatedAt:       daysAgo(5),
		},
		{
			ID:          genID(),
			Title:       "Casual Summer Top",
			Description: "Lightweight and breathable summer top with a relaxed fit, comfortable all day long.",
			Category:    "tops", Gender: "women", Size: "S",
			Condition: model.ConditionGood, Brand: "H&M",
			Color: "white", Material: "95% Cotton, 5% Elastane", Points: 30,
			Tags:   []string{"casual", "summer", "comfortable", "everyday"},
			Images: []string{"https://images.rewear.example/items/summer-top.jpg"},
			UserID: members[1].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 32,
			ExchangeOptions: []string{"pickup", "meetup"},
			CreatedAt:       daysAgo(3),
		},
		{
			ID:          genID(),
			Title:       "Professional Business Shirt",
			Description: "Crisp button-down shirt for office wear. Tailored fit, small stain on the left sleeve but hardly noticeable.",
			Category:    "tops", Gender: "unisex", Size: "M",
			Condition: model.ConditionGood, Brand: "Brooks Brothers",
			Color: "blue", Material: "100% Cotton", Points: 40,
			Tags:   []string{"business", "professional", "office", "formal"},
			Images: []string{"https://images.rewear.example/items/business-shirt.jpg"},
			UserID: members[2].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 28,
			ExchangeOptions: []string{"shipping"},
			CreatedAt:       daysAgo(7),
		},
		{
			ID:          genID(),
			Title:       "Designer Leather Handbag",
			Description: "Authentic designer handbag in excellent condition. Premium leather and a timeless design.",
			Category:    "accessories", Gender: "women", Size: "One Size",
			Condition: model.ConditionExcellent, Brand: "Michael Kors",
			Color: "brown", Material: "Genuine Leather", Points: 80,
			Tags:   []string{"designer", "leather", "handbag", "luxury", "elegant"},
			Images: []string{"https://images.rewear.example/items/leather-handbag.jpg"},
			UserID: members[0].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 67,
			ExchangeOptions: []string{"pickup", "shipping", "meetup"},
			CreatedAt:       daysAgo(2),
		},
		{
			ID:          genID(),
			Title:       "Vintage Denim Jacket",
			Description: "Classic vintage denim jacket with authentic wear and character. Perfect for layering.",
			Category:    "outerwear", Gender: "unisex", Size: "L",
			Condition: model.ConditionGood, Brand: "Levi's",
			Color: "blue", Material: "100% Cotton Denim", Points: 45,
			Tags:   []string{"vintage", "denim", "classic", "unisex", "layering"},
			Images: []string{"https://images.rewear.example/items/denim-jacket.jpg"},
			UserID: members[1].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 41,
			ExchangeOptions: []string{"pickup", "meetup"},
			CreatedAt:       daysAgo(4),
		},
		{
			ID:          genID(),
			Title:       "Elegant Evening Dress",
			Description: "Stunning evening dress for formal events. Beautiful detailing and a flattering silhouette.",
			Category:    "dresses", Gender: "women", Size: "M",
			Condition: model.ConditionExcellent, Brand: "Zara",
			Color: "black", Material: "95% Polyester, 5% Elastane", Points: 65,
			Tags:   []string{"evening", "formal", "elegant", "special occasion"},
			Images: []string{"https://images.rewear.example/items/evening-dress.jpg"},
			UserID: members[3].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 53,
			ExchangeOptions: []string{"pickup", "shipping"},
			CreatedAt:       daysAgo(6),
		},
		{
			ID:          genID(),
			Title:       "Cozy Winter Sweater",
			Description: "Warm knit sweater, a winter wardrobe essential with a comfortable fit.",
			Category:    "tops", Gender: "women", Size: "L",
			Condition: model.ConditionGood, Brand: "Gap",
			Color: "gray", Material: "80% Wool, 20% Acrylic", Points: 35,
			Tags:   []string{"winter", "warm", "cozy", "sweater", "knit"},
			Images: []string{"https://images.rewear.example/items/winter-sweater.jpg"},
			UserID: members[2].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 29,
			ExchangeOptions: []string{"pickup"},
			CreatedAt:       daysAgo(8),
		},
		{
			ID:          genID(),
			Title:       "Trendy Graphic T-Shirt",
			Description: "Graphic t-shirt with a unique design. Comfortable cotton blend fabric for casual wear.",
			Category:    "tops", Gender: "unisex", Size: "M",
			Condition: model.ConditionGood, Brand: "Urban Outfitters",
			Color: "white", Material: "60% Cotton, 40% Polyester", Points: 25,
			Tags:   []string{"graphic", "casual", "trendy", "unisex", "streetwear"},
			Images: []string{"https://images.rewear.example/items/graphic-tee.jpg"},
			UserID: members[3].ID, Status: model.ItemStatusApproved,
			Available: true, Views: 22,
			ExchangeOptions: []string{"pickup", "meetup"},
			CreatedAt:       daysAgo(1),
		},
		// Pending listing awaiting moderation, flagged for review.
		{
			ID:          genID(),
			Title:       "Designer Shoes",
			Description: "High-end designer shoes in great condition. Authentic and stylish.",
			Category:    "shoes", Gender: "women", Size: "8",
			Condition: model.ConditionExcellent, Brand: "Jimmy Choo",
			Color: "black", Material: "Leather", Points: 120,
			Tags:   []string{"designer", "luxury", "shoes", "formal"},
			Images: []string{"https://images.rewear.example/items/designer-shoes.jpg"},
			UserID: members[1].ID, Status: model.ItemStatusPending,
			Available: true, Views: 0,
			ExchangeOptions: []string{"pickup", "shipping"},
			CreatedAt:       now.Add(-2 * time.Hour),
			Flagged:         true,
			FlagReason:      "Suspicious authenticity claim",
		},
	}

	st.Categories = []model.Category{
		{ID: "tops", Name: "Tops", Icon: "fa-tshirt"},
		{ID: "dresses", Name: "Dresses", Icon: "fa-female"},
		{ID: "pants", Name: "Pants & Jeans", Icon: "fa-user"},
		{ID: "skirts", Name: "Skirts", Icon: "fa-female"},
		{ID: "outerwear", Name: "Outerwear", Icon: "fa-jacket"},
		{ID: "shoes", Name: "Shoes", Icon: "fa-shoe-prints"},
		{ID: "accessories", Name: "Accessories", Icon: "fa-gem"},
		{ID: "underwear", Name: "Underwear & Sleepwear", Icon: "fa-tshirt"},
	}

	return st
}
