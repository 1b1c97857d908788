package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpadapter "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/idgen"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dishUoWs func() commands.DishUoW

func (f dishUoWs) Create() commands.DishUoW { return f() }

type orderUoWs func() commands.OrderUoW

func (f orderUoWs) Create() commands.OrderUoW { return f() }

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) kinds() []order.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]order.EventKind, 0, len(p.events))
	for _, evt := range p.events {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}

func newTestAPI(t *testing.T) (*echo.Echo, *recordingPublisher) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	dishes := dishUoWs(func() commands.DishUoW { return factory.Create() })
	orders := orderUoWs(func() commands.OrderUoW { return factory.Create() })
	publisher := &recordingPublisher{}
	ids := idgen.NewUUIDGenerator()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateDish:  commands.NewCreateDishCommandHandler(dishes, ids),
		UpdateDish:  commands.NewUpdateDishCommandHandler(dishes),
		CreateOrder: commands.NewCreateOrderCommandHandler(orders, ids, publisher, logger),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(orders, publisher, logger),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(orders, publisher, logger),
		ListDishes:  queries.NewListDishesQueryHandler(store.DishRepository()),
		GetDish:     queries.NewGetDishQueryHandler(store.DishRepository()),
		ListOrders:  queries.NewListOrdersQueryHandler(store.OrderRepository()),
		GetOrder:    queries.NewGetOrderQueryHandler(store.OrderRepository()),
	})
	return httpadapter.NewRouter(server, logger), publisher
}

type response struct {
	Code  int
	Data  map[string]any
	List  []any
	Error string
}

func do(t *testing.T, e *echo.Echo, method, path, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	res := response{Code: rec.Code}
	if rec.Body.Len() == 0 {
		return res
	}

	var raw struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), rec.Body.String())
	res.Error = raw.Error
	if len(raw.Data) > 0 {
		if raw.Data[0] == '[' {
			require.NoError(t, json.Unmarshal(raw.Data, &res.List))
		} else {
			require.NoError(t, json.Unmarshal(raw.Data, &res.Data))
		}
	}
	return res
}

const tacoBody = `{"data":{"name":"Taco","description":"Spicy","price":3,"image_url":"http://x"}}`

func orderBody(id, status string) string {
	fields := map[string]any{
		"deliverTo":    "1 Main St",
		"mobileNumber": "555-0100",
		"dishes":       []any{map[string]any{"dishId": "d1", "quantity": 2}},
	}
	if id != "" {
		fields["id"] = id
	}
	if status != "" {
		fields["status"] = status
	}
	raw, _ := json.Marshal(map[string]any{"data": fields})
	return string(raw)
}

func TestDishes(t *testing.T) {
	t.Run("list is empty at first", func(t *testing.T) {
		e, _ := newTestAPI(t)

		res := do(t, e, http.MethodGet, "/dishes", "")

		assert.Equal(t, http.StatusOK, res.Code)
		assert.NotNil(t, res.List)
		assert.Empty(t, res.List)
	})

	t.Run("create then read", func(t *testing.T) {
		e, _ := newTestAPI(t)

		created := do(t, e, http.MethodPost, "/dishes", tacoBody)
		require.Equal(t, http.StatusCreated, created.Code)
		id, _ := created.Data["id"].(string)
		assert.Len(t, id, 32)
		assert.Equal(t, "Taco", created.Data["name"])
		assert.InDelta(t, 3, created.Data["price"], 0)
		assert.Equal(t, "http://x", created.Data["image_url"])

		read := do(t, e, http.MethodGet, "/dishes/"+id, "")
		assert.Equal(t, http.StatusOK, read.Code)
		assert.Equal(t, created.Data, read.Data)

		list := do(t, e, http.MethodGet, "/dishes", "")
		assert.Len(t, list.List, 1)
	})

	t.Run("update overwrites fields and keeps the id", func(t *testing.T) {
		e, _ := newTestAPI(t)
		id := do(t, e, http.MethodPost, "/dishes", tacoBody).Data["id"].(string)

		res := do(t, e, http.MethodPut, "/dishes/"+id,
			`{"data":{"name":"Burrito","description":"Big","price":9,"image_url":"http://y"}}`)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, id, res.Data["id"])
		assert.Equal(t, "Burrito", res.Data["name"])
		assert.InDelta(t, 9, res.Data["price"], 0)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			method  string
			path    string
			body    string
			code    int
			message string
		}{
			{"empty body", http.MethodPost, "/dishes", "", http.StatusBadRequest, "Dish must include a name"},
			{"missing image_url", http.MethodPost, "/dishes",
				`{"data":{"name":"Taco","description":"Spicy","price":3}}`,
				http.StatusBadRequest, "Dish must include a image_url"},
			{"price as string", http.MethodPost, "/dishes",
				`{"data":{"name":"Taco","description":"Spicy","price":"17","image_url":"http://x"}}`,
				http.StatusBadRequest, "Dish must have a price that is an integer greater than zero"},
			{"fractional price", http.MethodPost, "/dishes",
				`{"data":{"name":"Taco","description":"Spicy","price":2.5,"image_url":"http://x"}}`,
				http.StatusBadRequest, "Dish must have a price that is an integer greater than zero"},
			{"unknown dish", http.MethodGet, "/dishes/nope", "", http.StatusNotFound, "Dish does not exist: nope."},
			{"update unknown dish", http.MethodPut, "/dishes/nope", tacoBody,
				http.StatusNotFound, "Dish does not exist: nope."},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e, _ := newTestAPI(t)

				res := do(t, e, tt.method, tt.path, tt.body)

				assert.Equal(t, tt.code, res.Code)
				assert.Equal(t, tt.message, res.Error)
			})
		}
	})

	t.Run("update with another id in the body", func(t *testing.T) {
		e, _ := newTestAPI(t)
		id := do(t, e, http.MethodPost, "/dishes", tacoBody).Data["id"].(string)

		res := do(t, e, http.MethodPut, "/dishes/"+id,
			`{"data":{"id":"other","name":"Taco","description":"Spicy","price":3,"image_url":"http://x"}}`)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Equal(t, "Dish id does not match route id. Dish: other, Route: "+id, res.Error)
	})
}

func TestOrders(t *testing.T) {
	t.Run("create ignores status and publishes", func(t *testing.T) {
		e, publisher := newTestAPI(t)

		res := do(t, e, http.MethodPost, "/orders", orderBody("", "delivered"))

		require.Equal(t, http.StatusCreated, res.Code)
		assert.Len(t, res.Data["id"], 32)
		assert.Equal(t, "pending", res.Data["status"])
		assert.Equal(t, []any{map[string]any{"dishId": "d1", "quantity": float64(2)}}, res.Data["dishes"])
		assert.Equal(t, []order.EventKind{order.EventCreated}, publisher.kinds())
	})

	t.Run("lifecycle", func(t *testing.T) {
		e, publisher := newTestAPI(t)
		id := do(t, e, http.MethodPost, "/orders", orderBody("", "")).Data["id"].(string)

		updated := do(t, e, http.MethodPut, "/orders/"+id, orderBody(id, "preparing"))
		require.Equal(t, http.StatusOK, updated.Code)
		assert.Equal(t, "preparing", updated.Data["status"])

		refused := do(t, e, http.MethodDelete, "/orders/"+id, "")
		assert.Equal(t, http.StatusBadRequest, refused.Code)
		assert.Equal(t, "An order cannot be deleted unless it is pending.", refused.Error)

		delivered := do(t, e, http.MethodPut, "/orders/"+id, orderBody("", "delivered"))
		assert.Equal(t, http.StatusBadRequest, delivered.Code)
		assert.Equal(t, "A delivered order cannot be changed", delivered.Error)

		read := do(t, e, http.MethodGet, "/orders/"+id, "")
		assert.Equal(t, "preparing", read.Data["status"])
		assert.Equal(t, []order.EventKind{order.EventCreated, order.EventUpdated}, publisher.kinds())
	})

	t.Run("delete a pending order", func(t *testing.T) {
		e, publisher := newTestAPI(t)
		id := do(t, e, http.MethodPost, "/orders", orderBody("", "")).Data["id"].(string)

		res := do(t, e, http.MethodDelete, "/orders/"+id, "")
		assert.Equal(t, http.StatusNoContent, res.Code)

		gone := do(t, e, http.MethodGet, "/orders/"+id, "")
		assert.Equal(t, http.StatusNotFound, gone.Code)
		assert.Equal(t, "Order "+id+" could not be found", gone.Error)

		assert.Empty(t, do(t, e, http.MethodGet, "/orders", "").List)
		assert.Equal(t, []order.EventKind{order.EventCreated, order.EventDeleted}, publisher.kinds())
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			method  string
			path    string
			body    string
			code    int
			message string
		}{
			{"dishes absent", http.MethodPost, "/orders",
				`{"data":{"deliverTo":"1 Main St","mobileNumber":"555-0100"}}`,
				http.StatusBadRequest, "Order must include a dishes"},
			{"dishes not a list", http.MethodPost, "/orders",
				`{"data":{"deliverTo":"1 Main St","mobileNumber":"555-0100","dishes":"abc"}}`,
				http.StatusBadRequest, "Order must include at least one dish"},
			{"dishes empty", http.MethodPost, "/orders",
				`{"data":{"deliverTo":"1 Main St","mobileNumber":"555-0100","dishes":[]}}`,
				http.StatusBadRequest, "Order must include at least one dish"},
			{"quantity missing at index 1", http.MethodPost, "/orders",
				`{"data":{"deliverTo":"1 Main St","mobileNumber":"555-0100","dishes":[{"quantity":1},{"dishId":"d2"}]}}`,
				http.StatusBadRequest, "Dish 1 must have a quantity that is an integer greater than 0"},
			{"dish entry not an object", http.MethodPost, "/orders",
				`{"data":{"deliverTo":"1 Main St","mobileNumber":"555-0100","dishes":[7]}}`,
				http.StatusBadRequest, "Dish 0 must have a quantity that is an integer greater than 0"},
			{"unknown order", http.MethodGet, "/orders/nope", "", http.StatusNotFound, "Order nope could not be found"},
			{"update unknown order", http.MethodPut, "/orders/nope", orderBody("", ""),
				http.StatusNotFound, "Order nope could not be found"},
			{"delete unknown order", http.MethodDelete, "/orders/nope", "",
				http.StatusNotFound, "Order nope could not be found"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e, _ := newTestAPI(t)

				res := do(t, e, tt.method, tt.path, tt.body)

				assert.Equal(t, tt.code, res.Code)
				assert.Equal(t, tt.message, res.Error)
			})
		}
	})

	t.Run("update checks run in order", func(t *testing.T) {
		e, _ := newTestAPI(t)
		id := do(t, e, http.MethodPost, "/orders", orderBody("", "")).Data["id"].(string)

		mismatch := do(t, e, http.MethodPut, "/orders/"+id, orderBody("other", "bogus"))
		assert.Equal(t, "Order id does not match route id. Order: other, Route: "+id+".", mismatch.Error)

		status := do(t, e, http.MethodPut, "/orders/"+id, `{"data":{"status":"bogus"}}`)
		assert.Equal(t, "Order must have a status of pending, preparing, out-for-delivery, delivered", status.Error)

		missing := do(t, e, http.MethodPut, "/orders/"+id, `{"data":{"status":"preparing"}}`)
		assert.Equal(t, "Order must include a deliverTo", missing.Error)
	})
}

func TestRouting(t *testing.T) {
	e, _ := newTestAPI(t)

	tests := []struct {
		name    string
		method  string
		path    string
		code    int
		message string
	}{
		{"unknown path", http.MethodGet, "/menus", http.StatusNotFound, "Path not found: /menus"},
		{"dish delete", http.MethodDelete, "/dishes/d1", http.StatusMethodNotAllowed, "DELETE not allowed for /dishes/d1"},
		{"collection put", http.MethodPut, "/orders", http.StatusMethodNotAllowed, "PUT not allowed for /orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, e, tt.method, tt.path, "")

			assert.Equal(t, tt.code, res.Code)
			assert.Equal(t, tt.message, res.Error)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		res := do(t, e, http.MethodPost, "/dishes", `{"data":`)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})
}

func TestOpenAPIDocument(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	t.Run("every operation is routed", func(t *testing.T) {
		e, _ := newTestAPI(t)
		routed := make(map[string]bool)
		for _, r := range e.Routes() {
			routed[r.Method+" "+r.Path] = true
		}

		for path, item := range doc.Paths.Map() {
			echoPath := strings.NewReplacer("{", ":", "}", "").Replace(path)
			for method := range item.Operations() {
				assert.True(t, routed[method+" "+echoPath], "%s %s is not routed", method, path)
			}
		}
	})

	t.Run("served through swagger", func(t *testing.T) {
		require.NoError(t, httpadapter.RegisterSwaggerDoc(doc))
		e, _ := newTestAPI(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GrubDash API")
	})
}
