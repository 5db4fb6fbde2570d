// Command seed wipes the breeds collection and loads the reference
// catalog. Intended for local development and fresh deployments.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/infra/persistence/mongodb"
	"github.com/ilumaty/greendog-backend/internal/infra/setup"
)

var breedsData = []domain.Breed{
	{
		Name:        "Staffordshire Bull Terrier",
		Description: "Le Staffordshire Bull Terrier est un chien musclé et courageux, reconnu pour son affection exceptionnelle envers les humains, particulièrement les enfants. Malgré son apparence imposante, c'est un compagnon doux, loyal et joueur qui forme des liens très forts avec sa famille.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeMedium,
			Weight:         domain.Range{Min: 11, Max: 17},
			Height:         domain.Range{Min: 36, Max: 41},
			Temperament:    []string{"courageux", "affectueux", "loyal", "intelligent"},
			ActivityLevel:  domain.ActivityHigh,
			LifeExpectancy: domain.Range{Min: 12, Max: 14},
		},
		Origin: "Angleterre",
		Care: domain.Care{
			Grooming: "Pelage court et lisse nécessitant un brossage hebdomadaire et des bains occasionnels.",
			Exercise: "Besoins élevés en exercice - 1 à 2 heures par jour incluant jeux et promenades.",
			Diet:     "200-300g de croquettes de qualité par jour, adaptées à son niveau d'activité.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Dysplasie de la hanche", "Cataracte", "Problèmes cutanés"},
			PreventiveCare: "Visites vétérinaires régulières, surveillance oculaire, soins dentaires.",
		},
	},
	{
		Name:        "Labrador Retriever",
		Description: "Le Labrador est un chien au tempérament équilibré et à l'âme douce, qui ne demande qu'à jouer, nager et rapporter avec sa famille. Cette race intelligente et athlétique est désireuse de plaire à son maître et devient un ami fidèle pour toute la famille.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeLarge,
			Weight:         domain.Range{Min: 25, Max: 36},
			Height:         domain.Range{Min: 55, Max: 57},
			Temperament:    []string{"amical", "sociable", "équilibré", "loyal"},
			ActivityLevel:  domain.ActivityHigh,
			LifeExpectancy: domain.Range{Min: 10, Max: 12},
		},
		Origin: "Canada",
		Care: domain.Care{
			Grooming: "Les Labradors perdent beaucoup de poils et nécessitent un brossage régulier pour gérer la mue.",
			Exercise: "Les Labradors ont besoin d'au moins 1 à 2 heures d'exercice quotidien pour rester en bonne santé.",
			Diet:     "Croquettes de qualité, 300-400g par jour, ajustées selon le niveau d'activité et l'âge.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Dysplasie de la hanche", "Dysplasie du coude", "Atrophie rétinienne progressive"},
			PreventiveCare: "Visites vétérinaires régulières, maintien d'un poids sain, exercice approprié.",
		},
	},
	{
		Name:        "Berger Allemand",
		Description: "Les Bergers Allemands sont de grands chiens athlétiques au caractère noble et à l'intelligence élevée. Loyaux, courageux et très polyvalents, ils sont employés dans de nombreux rôles, du compagnon familial au chien de garde en passant par le service militaire.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeLarge,
			Weight:         domain.Range{Min: 22, Max: 40},
			Height:         domain.Range{Min: 55, Max: 65},
			Temperament:    []string{"confiant", "courageux", "intelligent", "loyal"},
			ActivityLevel:  domain.ActivityVeryHigh,
			LifeExpectancy: domain.Range{Min: 9, Max: 13},
		},
		Origin: "Allemagne",
		Care: domain.Care{
			Grooming: "Double pelage nécessitant un brossage régulier et une forte mue lors des changements de saison.",
			Exercise: "Besoins élevés en exercice - plus de 2 heures par jour. La stimulation mentale est importante.",
			Diet:     "Croquettes de qualité, 350-450g par jour, formulées pour les grandes races actives.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Dysplasie de la hanche", "Myélopathie dégénérative", "Fistules périanales"},
			PreventiveCare: "Dépistage régulier, maintien du poids idéal, exercice et nutrition appropriés.",
		},
	},
	{
		Name:        "Golden Retriever",
		Description: "Les Golden Retrievers sont des chiens remarquablement dévoués, intelligents et faciles à éduquer, avec un magnifique pelage doré. Grâce à leur nature douce et leur amour de l'activité, ils font d'excellents animaux de compagnie et excellent dans les rôles d'assistance.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeLarge,
			Weight:         domain.Range{Min: 25, Max: 34},
			Height:         domain.Range{Min: 51, Max: 61},
			Temperament:    []string{"amical", "intelligent", "dévoué", "obéissant"},
			ActivityLevel:  domain.ActivityHigh,
			LifeExpectancy: domain.Range{Min: 10, Max: 12},
		},
		Origin: "Écosse",
		Care: domain.Care{
			Grooming: "Double pelage dense nécessitant un brossage quotidien et une tonte régulière.",
			Exercise: "Besoin de 1 à 2 heures d'exercice quotidien incluant promenades, courses ou natation.",
			Diet:     "Croquettes de qualité, 300-400g par jour, adaptées à l'âge et au niveau d'activité.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Dysplasie de la hanche", "Dysplasie du coude", "Cancer"},
			PreventiveCare: "Visites vétérinaires régulières, compléments articulaires, maintien d'un poids sain.",
		},
	},
	{
		Name:        "Bouledogue Français",
		Description: "Avec son esprit comique et ses adorables oreilles de chauve-souris, le Bouledogue Français est un charmant compagnon intelligent, alerte, joueur et absolument intrépide. Ce sont des chiens adaptables qui s'épanouissent en environnement urbain.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeSmall,
			Weight:         domain.Range{Min: 8, Max: 14},
			Height:         domain.Range{Min: 28, Max: 33},
			Temperament:    []string{"alerte", "joueur", "intelligent", "affectueux"},
			ActivityLevel:  domain.ActivityModerate,
			LifeExpectancy: domain.Range{Min: 10, Max: 12},
		},
		Origin: "France",
		Care: domain.Care{
			Grooming: "Pelage court nécessitant peu d'entretien, mais les plis du visage doivent être nettoyés régulièrement.",
			Exercise: "Besoins modérés en exercice - promenades quotidiennes et temps de jeu suffisants.",
			Diet:     "150-200g de croquettes de qualité par jour, surveiller l'obésité.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Syndrome brachycéphale", "Problèmes oculaires", "Problèmes cutanés"},
			PreventiveCare: "Garder au frais en été, nettoyage régulier des oreilles, soins dentaires.",
		},
	},
	{
		Name:        "Beagle",
		Description: "Les Beagles sont de joyeux petits chasseurs, au bonheur lorsqu'ils suivent une piste à travers champs. Ce sont des chiens de meute qui créent des liens forts avec leur famille et sont connus pour leur tempérament attachant et leur aboiement distinctif.",
		Characteristics: domain.Characteristics{
			Size:           domain.SizeSmall,
			Weight:         domain.Range{Min: 9, Max: 15},
			Height:         domain.Range{Min: 33, Max: 40},
			Temperament:    []string{"curieux", "joyeux", "indépendant", "sociable"},
			ActivityLevel:  domain.ActivityHigh,
			LifeExpectancy: domain.Range{Min: 12, Max: 15},
		},
		Origin: "Angleterre",
		Care: domain.Care{
			Grooming: "Pelage court nécessitant un brossage régulier et des bains occasionnels.",
			Exercise: "Besoins élevés en exercice - 1 à 2 heures par jour pour dépenser leur énergie.",
			Diet:     "150-200g de croquettes de qualité par jour, surveiller la prise de poids.",
		},
		Health: domain.Health{
			CommonIssues:   []string{"Infections auriculaires", "Hypothyroïdie", "Épilepsie"},
			PreventiveCare: "Nettoyage régulier des oreilles, surveillance thyroïdienne, soins dentaires.",
		},
	},
}

func main() {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		logrus.Fatal("Environment variable MONGODB_URI must be set")
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "greendog"
	}

	ctx := context.Background()
	client, db, err := setup.InitMongo(ctx, uri, dbName)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("Error disconnecting MongoDB: %v", err)
		}
	}()

	if err := setup.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}

	breedRepo := mongodb.NewMongoBreedRepository(db)

	deleted, err := breedRepo.DeleteAll(ctx)
	if err != nil {
		logrus.Fatalf("Failed to clear breeds collection: %v", err)
	}
	logrus.Infof("Removed %d existing breeds", deleted)

	inserted, err := breedRepo.InsertMany(ctx, breedsData)
	if err != nil {
		logrus.Fatalf("Failed to insert breeds: %v", err)
	}
	for _, breed := range breedsData {
		logrus.WithFields(logrus.Fields{
			"name": breed.Name,
			"size": breed.Characteristics.Size,
		}).Info("Breed seeded")
	}
	logrus.Infof("Seeding complete: %d breeds", inserted)
}
