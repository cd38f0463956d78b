package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"recipehub/internal/config"
	"recipehub/internal/db"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	demoEmail    = "demo@recipehub.local"
	demoName     = "Demo Cook"
	demoPassword = "demo-password"
)

var sampleRecipes = []model.Recipe{
	{
		Title:        "Spaghetti Aglio e Olio",
		Ingredients:  []string{"spaghetti", "garlic", "olive oil", "chili flakes", "parsley"},
		Instructions: []string{"Boil the spaghetti.", "Gently fry sliced garlic in olive oil.", "Toss pasta with the oil, chili, and parsley."},
		Categories:   []string{"pasta", "quick"},
	},
	{
		Title:        "Shakshuka",
		Ingredients:  []string{"eggs", "tomatoes", "onion", "bell pepper", "cumin", "paprika"},
		Instructions: []string{"Soften onion and pepper.", "Add spiced tomatoes and simmer.", "Crack in the eggs and cook until just set."},
		Categories:   []string{"breakfast", "vegetarian"},
	},
	{
		Title:        "Miso Soup",
		Ingredients:  []string{"dashi", "miso paste", "tofu", "wakame", "scallions"},
		Instructions: []string{"Warm the dashi.", "Whisk in miso off the boil.", "Add tofu, wakame, and scallions."},
		Categories:   []string{"soup"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	recipeRepo := repository.NewRecipeRepository(database)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	switch err {
	case nil:
		log.Printf("Demo user already exists: %s", user.ID.Hex())
	case mongo.ErrNoDocuments:
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{
			Name:         demoName,
			Email:        demoEmail,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user: %s", user.ID.Hex())
	default:
		log.Fatalf("Failed to look up demo user: %v", err)
	}

	seeded := 0
	for _, recipe := range sampleRecipes {
		recipe.Author = user.ID.Hex()
		recipe.CreatedAt = time.Now().UTC()
		if err := recipeRepo.Create(ctx, &recipe); err != nil {
			log.Printf("Skipping recipe %q: %v", recipe.Title, err)
			continue
		}
		seeded++
	}

	log.Printf("Seed complete: %d recipes inserted", seeded)
}
