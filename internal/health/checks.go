package health

import (
	"time"

	"github.com/hellofresh/health-go/v5"
	healthPg "github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/tnsurya7/newtons-labs/internal/config"
)

// New registers liveness checks for whichever backends are actually
// configured. With neither postgres nor redis the endpoint still responds,
// reporting a healthy but bare service.
func New(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "newtons-labs",
			Version: "v1.0",
		}),
		health.WithSystemInfo(),
	)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Configured() {
		err = h.Register(health.Config{
			Name:      "postgres",
			Timeout:   time.Second * 5,
			SkipOnErr: false,
			Check: healthPg.New(healthPg.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
		if err != nil {
			return nil, err
		}
	}

	if cfg.RedisConnect.Configured() {
		err = h.Register(health.Config{
			Name:      "redis",
			Timeout:   time.Second * 5,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
		if err != nil {
			return nil, err
		}
	}

	return h, nil
}
