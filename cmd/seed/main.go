package main

import (
	"context"
	"fmt"
	"log"

	"jovemservicos/internal/config"
	"jovemservicos/internal/database"
	"jovemservicos/internal/domain"
	"jovemservicos/internal/modules/notification"
	"jovemservicos/internal/modules/wallet"
	"jovemservicos/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := db.AutoMigrate(&wallet.Wallet{}, &wallet.Transaction{}, &notification.Event{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notification_events")
	db.Exec("DELETE FROM wallet_transactions")
	db.Exec("DELETE FROM wallets")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM jovens")
	db.Exec("DELETE FROM ongs")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM profit_config")

	users := repository.NewUserRepository(db)
	catalog := repository.NewCatalogRepository(db)
	margins := repository.NewProfitConfigRepository(db)
	ctx := context.Background()

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@jovemservicos.org",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrador",
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@jovemservicos.org")

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("cliente123"), bcrypt.DefaultCost)
	clientNames := []string{"Ana Souza", "Bruno Lima", "Carla Mendes"}
	for i, name := range clientNames {
		client := domain.User{
			Email:        fmt.Sprintf("cliente%d@mail.com", i+1),
			PasswordHash: string(clientHash),
			Role:         domain.RoleClient,
			Name:         name,
			Phone:        fmt.Sprintf("+55 11 9876-54%02d", i+10),
		}
		if err := users.Create(ctx, &client); err != nil {
			log.Fatal("client create failed:", err)
		}
	}

	log.Println("Creating ONGs and jovens...")
	ongNames := []string{"Instituto Crescer", "Projeto Amanhã"}
	var ongs []domain.Ong
	for i, name := range ongNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("ong123456"), bcrypt.DefaultCost)
		ongUser := domain.User{
			Email:        fmt.Sprintf("ong%d@jovemservicos.org", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleOng,
			Name:         name,
		}
		if err := users.Create(ctx, &ongUser); err != nil {
			log.Fatal("ong user create failed:", err)
		}
		ong := domain.Ong{UserID: ongUser.ID, Name: name}
		if err := catalog.CreateOng(ctx, &ong); err != nil {
			log.Fatal("ong create failed:", err)
		}
		ongs = append(ongs, ong)
	}

	jovemNames := []string{"Diego Santos", "Elisa Rocha", "Felipe Alves", "Gabriela Nunes"}
	for i, name := range jovemNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("jovem123"), bcrypt.DefaultCost)
		jovemUser := domain.User{
			Email:        fmt.Sprintf("jovem%d@jovemservicos.org", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleJovem,
			Name:         name,
		}
		if err := users.Create(ctx, &jovemUser); err != nil {
			log.Fatal("jovem user create failed:", err)
		}
		jovem := domain.Jovem{
			UserID: jovemUser.ID,
			OngID:  ongs[i%len(ongs)].ID,
			Active: true,
		}
		if err := catalog.CreateJovem(ctx, &jovem); err != nil {
			log.Fatal("jovem create failed:", err)
		}
	}

	log.Println("Creating services...")
	services := []domain.Service{
		{Name: "Limpeza residencial", Category: "casa", BasePrice: 80, Active: true},
		{Name: "Jardinagem", Category: "casa", BasePrice: 100, Active: true},
		{Name: "Aulas de reforço", Category: "educacao", BasePrice: 60, Active: true},
		{Name: "Montagem de móveis", Category: "casa", BasePrice: 120, Active: true},
		{Name: "Suporte de informática", Category: "tecnologia", BasePrice: 90, Active: true},
	}
	for i := range services {
		if err := catalog.CreateService(ctx, &services[i]); err != nil {
			log.Fatal("service create failed:", err)
		}
	}

	log.Printf("Setting profit margin to %.1f%%...", cfg.SeedProfitMarginPercent)
	if err := margins.Set(ctx, cfg.SeedProfitMarginPercent); err != nil {
		log.Fatal("margin set failed:", err)
	}

	log.Println("Seed complete.")
}
