package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/usecases"
)

const testSignatureSecret = "gateway-secret"

type fixture struct {
	router    *gin.Engine
	users     *userRepoStub
	workers   *workerRepoStub
	specs     *specializationRepoStub
	locations *locationRepoStub
	orders    *orderRepoStub
	txns      *transactionRepoStub
	reviews   *reviewRepoStub
	publisher *publisherStub
	location  *LiveLocationHandler
}

// newFixture wires every resource handler over in-memory repositories.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:     newUserRepoStub(),
		specs:     newSpecializationRepoStub(),
		locations: &locationRepoStub{},
		orders:    newOrderRepoStub(),
		reviews:   newReviewRepoStub(),
		publisher: &publisherStub{},
	}
	f.workers = newWorkerRepoStub(f.specs)
	f.txns = newTransactionRepoStub(f.orders)
	uow := uowStub{}

	userUC := usecases.NewUserUsecase(f.users, uow)
	workerUC := usecases.NewWorkerUsecase(f.workers, uow)
	specUC := usecases.NewSpecializationUsecase(f.specs, f.workers, uow)
	locationUC := usecases.NewLiveLocationUsecase(f.locations, f.workers, uow, f.publisher)
	orderUC := usecases.NewOrderUsecase(f.orders, f.users, f.workers, uow, f.publisher)
	txnUC := usecases.NewTransactionUsecase(f.txns, f.orders, f.users, uow, testSignatureSecret)
	reviewUC := usecases.NewReviewUsecase(f.reviews, f.orders, uow)

	users := NewUserHandler(userUC)
	workers := NewWorkerHandler(workerUC)
	specs := NewSpecializationHandler(specUC, workerUC)
	f.location = NewLiveLocationHandler(locationUC)
	orders := NewOrderHandler(orderUC)
	txns := NewTransactionHandler(txnUC)
	reviews := NewReviewHandler(reviewUC)

	r := newTestRouter()
	api := r.Group("/api/v1")

	api.POST("/users", users.CreateUser)
	api.GET("/users", users.ListUsers)
	api.GET("/users/:id", users.GetUser)
	api.GET("/users/email/:email", users.GetUserByEmail)
	api.PUT("/users/:id", users.UpdateUser)
	api.DELETE("/users/:id", users.DeleteUser)

	api.POST("/workers", workers.CreateWorker)
	api.GET("/workers", workers.ListWorkers)
	api.GET("/workers/:id", workers.GetWorker)
	api.GET("/workers/email/:email", workers.GetWorkerByEmail)
	api.PUT("/workers/:id", workers.UpdateWorker)
	api.PATCH("/workers/:id/availability", workers.SetAvailability)
	api.DELETE("/workers/:id", workers.DeleteWorker)

	api.POST("/specializations", specs.CreateSpecialization)
	api.GET("/specializations", specs.ListSpecializations)
	api.GET("/specializations/:id", specs.GetSpecialization)
	api.GET("/specializations/worker/:workerId", specs.ListByWorker)
	api.GET("/specializations/workers/:category", specs.ListWorkersByCategory)
	api.PUT("/specializations/:id", specs.UpdateSpecialization)
	api.DELETE("/specializations/:id", specs.DeleteSpecialization)

	api.POST("/live-locations", f.location.CreateLiveLocation)
	api.GET("/live-locations", f.location.ListLiveLocations)
	api.GET("/live-locations/:workerId", f.location.ListByWorker)
	api.GET("/live-locations/:workerId/latest", f.location.Latest)
	api.DELETE("/live-locations/:id", f.location.DeleteLiveLocation)

	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders", orders.ListOrders)
	api.GET("/orders/:id", orders.GetOrder)
	api.GET("/orders/user/:userId", orders.ListByUser)
	api.GET("/orders/worker/:workerId", orders.ListByWorker)
	api.PATCH("/orders/:id/status", orders.UpdateOrderStatus)
	api.DELETE("/orders/:id", orders.DeleteOrder)

	api.POST("/transactions", txns.CreateTransaction)
	api.GET("/transactions", txns.ListTransactions)
	api.GET("/transactions/:id", txns.GetTransaction)
	api.GET("/transactions/order/:orderId", txns.ListByOrder)
	api.GET("/transactions/user/:userId", txns.ListByUser)
	api.DELETE("/transactions/:id", txns.DeleteTransaction)

	api.POST("/reviews", reviews.CreateReview)
	api.GET("/reviews", reviews.ListReviews)
	api.GET("/reviews/:id", reviews.GetReview)
	api.GET("/reviews/order/:orderId", reviews.ListByOrder)
	api.GET("/reviews/worker/:workerId", reviews.ListByWorker)
	api.DELETE("/reviews/:id", reviews.DeleteReview)

	f.router = r
	return f
}

func (f *fixture) seedUser(id, email string) *entities.User {
	u := &entities.User{ID: id, FullName: "Test User", Email: email, PhoneNumber: "9830012345"}
	f.users.items[id] = u
	return u
}

func (f *fixture) seedWorker(id, email string) *entities.Worker {
	w := &entities.Worker{ID: id, FullName: "Test Worker", Email: email, PhoneNumber: "9830054321"}
	f.workers.items[id] = w
	return w
}

func (f *fixture) seedOrder(id, userID, workerID string) *entities.Order {
	o := &entities.Order{ID: id, UserID: userID, WorkerID: workerID, Status: entities.OrderStatusPending}
	f.orders.items[id] = o
	return o
}
