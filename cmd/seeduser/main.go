// cmd/seeduser/main.go — creates/updates the demo admin account.
// Usage: go run ./cmd/seeduser
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/PedroABernis/InventoryManager/internal/config"
	"github.com/PedroABernis/InventoryManager/internal/infra"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/repository"
	"github.com/PedroABernis/InventoryManager/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	email := "admin@example.com"
	password := "1234"
	name := "Admin Demo"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	var repos *repository.Set
	switch cfg.StorageDriver {
	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		repos = repository.NewPostgresSet(db)
	default:
		st, err := store.Open(cfg.DataDir)
		if err != nil {
			log.Fatalf("data dir error: %v", err)
		}
		repos = repository.NewLocalSet(st)
	}

	ctx := context.Background()
	existing, err := repos.Users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Name = name
		existing.PasswordHash = string(hash)
		existing.Active = true
		if err := repos.Users.Update(ctx, existing); err != nil {
			log.Fatalf("update error: %v", err)
		}
	case errors.Is(err, repository.ErrNotFound):
		u := &model.User{Name: name, Email: email, PasswordHash: string(hash), Active: true}
		if err := repos.Users.Create(ctx, u); err != nil {
			log.Fatalf("create error: %v", err)
		}
	default:
		log.Fatalf("lookup error: %v", err)
	}

	fmt.Printf("user %q created/updated with password %q\n", email, password)
}
