// Package scripts provides utility scripts for store and system management.
//
// The seeding functionality populates a development store with demo accounts
// and posts. Seeding is idempotent: it checks for existing users first, so it
// is safe to run against both new and already-populated databases.
package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/database"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/repository"
)

// Seeder populates the store with demo data for development
type Seeder struct {
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	sequencer database.Sequencer
	passwords *auth.PasswordConfig
}

// NewSeeder creates a new seeder
func NewSeeder(store *database.Store) *Seeder {
	return &Seeder{
		userRepo:  repository.NewUserRepository(store),
		postRepo:  repository.NewPostRepository(store),
		sequencer: store,
		passwords: auth.DefaultPasswordConfig(),
	}
}

// demoAccount pairs a registration with the posts it authors
type demoAccount struct {
	username string
	fullName string
	password string
	disabled bool
	posts    []string
}

// demoAccounts returns the accounts seeded into a development store
func demoAccounts() []demoAccount {
	return []demoAccount{
		{
			username: "alice",
			fullName: "Alice Anderson",
			password: "alicepassword",
			posts: []string{
				"Hello from the seeded feed!",
				"Second post to make the listing interesting.",
			},
		},
		{
			username: "bob",
			fullName: "Bob Brown",
			password: "bobpassword",
			posts: []string{
				"Bob checking in.",
			},
		},
		{
			username: "inactive",
			fullName: "Disabled Account",
			password: "inactivepassword",
			disabled: true,
		},
	}
}

// SeedDemoData inserts the demo accounts and their posts.
// Accounts that already exist are skipped, making reruns safe.
func (s *Seeder) SeedDemoData(ctx context.Context) error {
	log.Info().Msg("Seeding demo data")
	startTime := time.Now()

	for _, account := range demoAccounts() {
		exists, err := s.userRepo.ExistsByUsername(ctx, account.username)
		if err != nil {
			return fmt.Errorf("failed to check for existing user %s: %w", account.username, err)
		}
		if exists {
			log.Debug().Str("username", account.username).Msg("Seed account already present, skipping")
			continue
		}

		hash, err := auth.HashPassword(account.password, s.passwords)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		userID, err := s.sequencer.NextSequence(ctx, constants.SeqUsers)
		if err != nil {
			return err
		}

		user := models.NewUser(account.username, account.fullName)
		user.ID = userID
		user.HashedPassword = hash
		user.Disabled = account.disabled

		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", account.username, err)
		}

		for _, content := range account.posts {
			postID, err := s.sequencer.NextSequence(ctx, constants.SeqPosts)
			if err != nil {
				return err
			}

			post := models.NewPost(userID, content)
			post.ID = postID

			if err := s.postRepo.Create(ctx, post); err != nil {
				return fmt.Errorf("failed to seed post for %s: %w", account.username, err)
			}
		}

		log.Info().
			Str("username", account.username).
			Int64("user_id", userID).
			Int("posts", len(account.posts)).
			Msg("Seeded account")
	}

	log.Info().Dur("duration", time.Since(startTime)).Msg("Demo data seeded")
	return nil
}
