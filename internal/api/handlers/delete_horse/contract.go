package delete_horse

import "context"

type HorseService interface {
	Delete(ctx context.Context, id, customerID int64) error
}
