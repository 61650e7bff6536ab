package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"perkhub/internal/datastore"
	"perkhub/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandSeedDeals(),
			commandVerifyUser(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableUser(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableDeal(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableClaim(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

// commandSeedDeals replaces the catalog with the sample partner offers.
func commandSeedDeals() *cli.Command {
	return &cli.Command{
		Name:        "seed-deals",
		Description: "Replace the deal catalog with the sample seed",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			now := time.Now()
			deals := make([]*models.Deal, 0, len(sampleDeals))
			for i, deal := range sampleDeals {
				d := deal
				d.ID = uuid.NewString()
				d.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
				d.UpdatedAt = now
				deals = append(deals, &d)
			}

			if err := datastore.ReplaceDeals(ctx, db, deals); err != nil {
				log.Fatal(err)
			}

			fmt.Printf("Seeded %d deals\n", len(deals))

			return nil
		},
	}
}

func commandVerifyUser() *cli.Command {
	return &cli.Command{
		Name:        "verify-user",
		Description: "Toggle a user's verified flag by email",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "unverify",
				Value: false,
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			user, err := datastore.FindUserByEmail(ctx, db, c.String("email"))
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("no user with email %q", c.String("email"))
			}
			if err != nil {
				return err
			}

			verified := !c.Bool("unverify")
			if err := datastore.SetUserVerified(ctx, db, user.ID, verified); err != nil {
				return err
			}

			fmt.Printf("User %s verified=%v\n", user.Email, verified)

			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	return db, nil
}

var sampleDeals = []models.Deal{
	{
		Title:          "HubSpot CRM Pro",
		Description:    "Get 50% off HubSpot CRM Pro for the first year",
		Category:       models.CategorySales,
		PartnerName:    "HubSpot",
		AccessLevel:    models.AccessLevelPublic,
		BenefitDetails: "50% discount on HubSpot CRM Pro for 12 months. Includes all features: contact management, deal tracking, email templates, and analytics.",
	},
	{
		Title:           "Stripe Processing Fees",
		Description:     "Reduced processing fees for startups",
		Category:        models.CategoryDevelopment,
		PartnerName:     "Stripe",
		AccessLevel:     models.AccessLevelLocked,
		EligibilityNote: "Must be a registered startup with less than 50 employees",
		BenefitDetails:  "Reduced processing fees of 2.2% + 30¢ per transaction (normally 2.9% + 30¢). No monthly fees for the first 6 months.",
	},
	{
		Title:           "AWS Credits",
		Description:     "$10,000 in AWS credits for early-stage startups",
		Category:        models.CategoryDevelopment,
		PartnerName:     "Amazon Web Services",
		AccessLevel:     models.AccessLevelLocked,
		EligibilityNote: "Must be less than 2 years old and have raised less than $5M",
		BenefitDetails:  "$10,000 in AWS credits valid for 2 years. Includes access to AWS Activate program with technical support and training.",
	},
	{
		Title:          "Figma Team Plan",
		Description:    "Free Figma Team plan for startups",
		Category:       models.CategoryDesign,
		PartnerName:    "Figma",
		AccessLevel:    models.AccessLevelPublic,
		BenefitDetails: "Free Figma Team plan for 12 months. Includes unlimited files, version history, and team libraries.",
	},
	{
		Title:          "Notion Plus Plan",
		Description:    "50% off Notion Plus for teams",
		Category:       models.CategoryProductivity,
		PartnerName:    "Notion",
		AccessLevel:    models.AccessLevelPublic,
		BenefitDetails: "50% discount on Notion Plus plan for up to 10 team members. Includes unlimited blocks, advanced permissions, and priority support.",
	},
	{
		Title:           "Google Cloud Credits",
		Description:     "$5,000 in Google Cloud credits",
		Category:        models.CategoryDevelopment,
		PartnerName:     "Google Cloud",
		AccessLevel:     models.AccessLevelLocked,
		EligibilityNote: "Must be a technology startup with less than 100 employees",
		BenefitDetails:  "$5,000 in Google Cloud credits valid for 12 months. Includes access to Google for Startups program.",
	},
}
