// Seeds a synthetic reference corpus so the outlier check has enough
// accepted vectors to run in local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"btyesteem/internal/config"
	"btyesteem/internal/model"
	"btyesteem/internal/repository"
)

func main() {
	count := flag.Int("count", 600, "number of synthetic reference vectors to insert")
	seed := flag.Int64("seed", 42, "rng seed")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewReferenceRepo(client.Database(cfg.MongoDatabase))

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *count; i++ {
		vector := syntheticVector(rng)
		err := repo.Add(ctx, &model.ReferenceVector{
			SubmissionID: fmt.Sprintf("seed-%d", i),
			Vector:       vector,
		})
		if err != nil {
			log.Fatalf("failed to insert vector %d: %v", i, err)
		}
	}

	fmt.Printf("Inserted %d synthetic reference vectors\n", *count)
}

// syntheticVector draws answers around a per-respondent baseline so the
// corpus has realistic covariance rather than pure noise.
func syntheticVector(rng *rand.Rand) []float64 {
	baseline := 2.0 + rng.Float64() // respondent's central tendency
	vector := make([]float64, model.ItemCount)
	for i := range vector {
		v := baseline + rng.NormFloat64()*0.8
		answer := int(v + 0.5)
		if answer < model.ScaleMin {
			answer = model.ScaleMin
		}
		if answer > model.ScaleMax {
			answer = model.ScaleMax
		}
		vector[i] = float64(answer)
	}
	return vector
}
