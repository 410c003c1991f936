package flows

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/gateway/gatewaytest"
	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
)

type stubConfirmer struct {
	answer   bool
	messages []string
}

func (c *stubConfirmer) Confirm(message string, onResult func(ok bool)) {
	c.messages = append(c.messages, message)
	onResult(c.answer)
}

func validForm() ProductForm {
	return ProductForm{
		Name:        "Bath towel",
		Description: "Soft cotton",
		Price:       "12.5",
		Category:    model.CategoryTowels,
		ImageURLs:   "http://a.com/1.jpg, http://a.com/2.jpg",
	}
}

func payloadJSON(t *testing.T, call gatewaytest.Call) []byte {
	t.Helper()
	data, err := json.Marshal(call.Payload)
	require.NoError(t, err)
	return data
}

func TestParseImageURLs(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"http://a.com/1.jpg, http://a.com/2.jpg", []string{"http://a.com/1.jpg", "http://a.com/2.jpg"}},
		{"  http://a.com/1.jpg  ,,  ", []string{"http://a.com/1.jpg"}},
		{"", []string{}},
		{" , , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, ParseImageURLs(tt.input)); diff != "" {
				t.Errorf("ParseImageURLs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProductForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *ProductForm)
		err    error
	}{
		{"valid", func(f *ProductForm) {}, nil},
		{"empty name", func(f *ProductForm) { f.Name = "" }, ErrMissingFields},
		{"blank name", func(f *ProductForm) { f.Name = "   " }, ErrMissingFields},
		{"empty price", func(f *ProductForm) { f.Price = "" }, ErrMissingFields},
		{"empty category", func(f *ProductForm) { f.Category = "" }, ErrMissingFields},
		{"price not a number", func(f *ProductForm) { f.Price = "twelve" }, ErrInvalidPrice},
		{"price NaN", func(f *ProductForm) { f.Price = "NaN" }, ErrInvalidPrice},
		{"unknown category", func(f *ProductForm) { f.Category = "Furniture" }, ErrUnknownCategory},
		{"description optional", func(f *ProductForm) { f.Description = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.modify(&form)
			err := form.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestFormFromProduct(t *testing.T) {
	p := model.Product{
		ID:          "3",
		Name:        "Robe",
		Description: "Waffle",
		Price:       1234.5,
		Category:    model.CategorySpaSupplies,
		ImageURL:    model.ImageList{"http://a.com/1.jpg", "http://a.com/2.jpg"},
	}

	form := FormFromProduct(p)
	assert.Equal(t, "1234.5", form.Price)
	assert.Equal(t, "http://a.com/1.jpg, http://a.com/2.jpg", form.ImageURLs)

	back, err := form.Product()
	require.NoError(t, err)
	back.ID = p.ID
	assert.Equal(t, p, back)
}

func TestAdd_Success(t *testing.T) {
	fake := gatewaytest.New()
	svc := NewService(fake, nil)

	outcome := svc.Add(context.Background(), validForm())

	assert.True(t, outcome.Success)
	assert.Equal(t, MsgAdded, outcome.Message)
	assert.Equal(t, nav.Dashboard{}, outcome.Next)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gateway.ActionAdd, calls[0].Action)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "add_payload", payloadJSON(t, calls[0]))
}

func TestAdd_ValidationFailureMakesNoCall(t *testing.T) {
	fake := gatewaytest.New()
	svc := NewService(fake, nil)

	form := validForm()
	form.Name = ""
	outcome := svc.Add(context.Background(), form)

	assert.False(t, outcome.Success)
	assert.Equal(t, ErrMissingFields.Error(), outcome.Message)
	assert.Nil(t, outcome.Next)
	assert.Empty(t, fake.Calls())
}

func TestAdd_RemoteFailure(t *testing.T) {
	fake := gatewaytest.New()
	fake.Fail(gateway.ActionAdd, "Sheet is read only")
	svc := NewService(fake, nil)

	outcome := svc.Add(context.Background(), validForm())

	assert.False(t, outcome.Success)
	assert.Equal(t, "Failed to add product: Sheet is read only", outcome.Message)
	assert.Nil(t, outcome.Next)
}

func TestUpdate_Success(t *testing.T) {
	fake := gatewaytest.New()
	svc := NewService(fake, nil)

	original := model.Product{ID: "17", Name: "Old towel", Price: 10, Category: model.CategoryTowels}
	form := validForm()
	form.Price = "14"
	form.ImageURLs = ""

	outcome := svc.Update(context.Background(), original, form)

	require.True(t, outcome.Success)
	assert.Equal(t, MsgUpdated, outcome.Message)
	require.NotNil(t, outcome.Product)
	assert.Equal(t, "17", outcome.Product.ID)
	assert.Equal(t, "Bath towel", outcome.Product.Name)
	assert.Equal(t, nav.ProductDetail{Product: *outcome.Product}, outcome.Next)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gateway.ActionUpdate, calls[0].Action)
	assert.Zero(t, fake.Fetches())

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "update_payload", payloadJSON(t, calls[0]))
}

func TestUpdate_Failures(t *testing.T) {
	fake := gatewaytest.New()
	fake.Fail(gateway.ActionUpdate, "Row not found")
	svc := NewService(fake, nil)
	original := model.Product{ID: "17", Category: model.CategoryTowels}

	outcome := svc.Update(context.Background(), original, validForm())
	assert.False(t, outcome.Success)
	assert.Equal(t, "Failed to update product: Row not found", outcome.Message)

	bad := validForm()
	bad.Price = ""
	outcome = svc.Update(context.Background(), original, bad)
	assert.Equal(t, ErrMissingFields.Error(), outcome.Message)

	outcome = svc.Update(context.Background(), model.Product{}, validForm())
	assert.False(t, outcome.Success)

	assert.Len(t, fake.Calls(), 1)
}

func TestConfirmDelete(t *testing.T) {
	t.Run("cancel makes no call", func(t *testing.T) {
		fake := gatewaytest.New()
		svc := NewService(fake, nil)
		confirmer := &stubConfirmer{answer: false}

		called := false
		svc.ConfirmDelete(context.Background(), confirmer, "17", func(Outcome) { called = true })

		assert.Equal(t, []string{ConfirmDeleteMessage}, confirmer.messages)
		assert.False(t, called)
		assert.Empty(t, fake.Calls())
	})

	t.Run("accept deletes and reloads", func(t *testing.T) {
		fake := gatewaytest.New()
		svc := NewService(fake, nil)

		var got Outcome
		svc.ConfirmDelete(context.Background(), &stubConfirmer{answer: true}, "17", func(o Outcome) { got = o })

		assert.Equal(t, Outcome{Success: true, Message: MsgDeleted, Reload: true}, got)
		calls := fake.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, gatewaytest.Call{Action: gateway.ActionDelete, Payload: map[string]any{"id": "17"}}, calls[0])
	})

	t.Run("remote failure", func(t *testing.T) {
		fake := gatewaytest.New()
		fake.Fail(gateway.ActionDelete, "Locked")
		svc := NewService(fake, nil)

		var got Outcome
		svc.ConfirmDelete(context.Background(), &stubConfirmer{answer: true}, "17", func(o Outcome) { got = o })

		assert.Equal(t, Outcome{Message: "Failed to delete product: Locked"}, got)
	})
}

func TestConfirmClearAll(t *testing.T) {
	t.Run("cancel makes no call", func(t *testing.T) {
		fake := gatewaytest.New()
		svc := NewService(fake, nil)
		confirmer := &stubConfirmer{answer: false}

		svc.ConfirmClearAll(context.Background(), confirmer, func(Outcome) { t.Fatal("done called on cancel") })

		assert.Equal(t, []string{ConfirmClearAllMessage}, confirmer.messages)
		assert.Empty(t, fake.Calls())
	})

	t.Run("accept clears local list", func(t *testing.T) {
		fake := gatewaytest.New()
		svc := NewService(fake, nil)

		var got Outcome
		svc.ConfirmClearAll(context.Background(), &stubConfirmer{answer: true}, func(o Outcome) { got = o })

		assert.True(t, got.ClearLocal)
		assert.Equal(t, MsgCleared, got.Message)
		calls := fake.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, gateway.ActionClearAll, calls[0].Action)
		assert.Nil(t, calls[0].Payload)
	})
}
