package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/store"
)

// Summary counts the rows inserted by Load.
type Summary struct {
	Clients      int `json:"clients"`
	Services     int `json:"services"`
	Suppliers    int `json:"suppliers"`
	Orders       int `json:"orders"`
	ChatMessages int `json:"chat_messages"`
}

// Load inserts the sample data set. It always inserts: running it twice
// yields two copies.
func Load(ctx context.Context, st *store.Store) (Summary, error) {
	var sum Summary
	log := zap.S().Named("seed")

	clientIDs := make([]int64, 0, len(clients))
	for _, c := range clients {
		res, err := st.Clients().Create(ctx, c)
		if err != nil {
			return sum, fmt.Errorf("failed to create client %q: %w", c.Name, err)
		}
		clientIDs = append(clientIDs, res.ID)
		sum.Clients++
	}

	for _, s := range services {
		if _, err := st.Services().Create(ctx, s); err != nil {
			return sum, fmt.Errorf("failed to create service %q: %w", s.Name, err)
		}
		sum.Services++
	}

	for _, s := range suppliers {
		if _, err := st.Suppliers().Create(ctx, s); err != nil {
			return sum, fmt.Errorf("failed to create supplier %q: %w", s.Name, err)
		}
		sum.Suppliers++
	}

	var firstOrder int64
	for _, o := range orders {
		order := o.order
		order.ClientID = &clientIDs[o.client]
		res, err := st.Orders().Create(ctx, order)
		if err != nil {
			return sum, fmt.Errorf("failed to create order %q: %w", order.ProjectName, err)
		}
		if firstOrder == 0 {
			firstOrder = res.ID
		}
		sum.Orders++
	}

	for _, m := range chatMessages {
		if _, err := st.Chat().Append(ctx, firstOrder, m.UserName, m.Message); err != nil {
			return sum, fmt.Errorf("failed to add chat message: %w", err)
		}
		sum.ChatMessages++
	}

	log.Infow("sample data loaded",
		"clients", sum.Clients,
		"services", sum.Services,
		"suppliers", sum.Suppliers,
		"orders", sum.Orders,
		"chat_messages", sum.ChatMessages)

	return sum, nil
}
