// Package flows implements the product mutations: add, update, delete and
// clear-all. Each flow validates locally, calls the gateway once and reports a
// user-facing Outcome; nothing here returns an error to the UI.
package flows

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/model"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
)

// User-facing copy
const (
	MsgAdded   = "Product added successfully!"
	MsgUpdated = "Product updated successfully!"
	MsgDeleted = "Product deleted successfully!"
	MsgCleared = "All catalog data cleared!"

	ConfirmDeleteMessage   = "Are you sure you want to delete this product?"
	ConfirmClearAllMessage = "WARNING: This will delete ALL products in the catalog. This action cannot be undone. Are you sure?"

	failedAdd    = "Failed to add product: %s"
	failedUpdate = "Failed to update product: %s"
	failedDelete = "Failed to delete product: %s"
	failedClear  = "Failed to clear all data: %s"

	missingID = "product has no id"
)

// Outcome is what a flow reports back to the screen. Every outcome is shown
// as a dismissible message; on dismissal the screen navigates to Next if set.
type Outcome struct {
	Success bool
	Message string
	// Next is the screen to show once the message is dismissed
	Next nav.Screen
	// Product is the saved product after a successful update
	Product *model.Product
	// Reload asks the management screen to fetch the list again
	Reload bool
	// ClearLocal asks the management screen to empty its list right away
	ClearLocal bool
}

// Confirmer asks the user a yes/cancel question. onResult is called exactly
// once with the answer.
type Confirmer interface {
	Confirm(message string, onResult func(ok bool))
}

// Service runs the mutation flows against the gateway
type Service struct {
	caller gateway.Caller
	logger *zap.Logger
}

// NewService creates a flows service
func NewService(caller gateway.Caller, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		caller: caller,
		logger: logger.Named("flows"),
	}
}

// Add validates form and submits it as a new product. On success the screen
// returns to Dashboard when the message is dismissed; on failure the form is
// expected to stay populated.
func (s *Service) Add(ctx context.Context, form ProductForm) Outcome {
	product, err := form.Product()
	if err != nil {
		return failure(err.Error())
	}

	if _, err := s.caller.Call(ctx, gateway.ActionAdd, map[string]any{
		gateway.FieldProduct: productPayload(product),
	}); err != nil {
		s.logger.Warn("Add product failed", zap.String("name", product.Name), zap.Error(err))
		return failure(fmt.Sprintf(failedAdd, err.Error()))
	}

	s.logger.Info("Product added", zap.String("name", product.Name), zap.String("category", string(product.Category)))
	return Outcome{Success: true, Message: MsgAdded, Next: nav.Dashboard{}}
}

// Update validates form and submits it under original's id. The saved
// product replaces the original in place; nothing is re-fetched.
func (s *Service) Update(ctx context.Context, original model.Product, form ProductForm) Outcome {
	product, err := form.Product()
	if err != nil {
		return failure(err.Error())
	}
	if original.ID == "" {
		return failure(fmt.Sprintf(failedUpdate, missingID))
	}
	product.ID = original.ID

	payload := productPayload(product)
	payload[gateway.FieldID] = product.ID
	if _, err := s.caller.Call(ctx, gateway.ActionUpdate, map[string]any{
		gateway.FieldProduct: payload,
	}); err != nil {
		s.logger.Warn("Update product failed", zap.String("id", product.ID), zap.Error(err))
		return failure(fmt.Sprintf(failedUpdate, err.Error()))
	}

	s.logger.Info("Product updated", zap.String("id", product.ID))
	return Outcome{
		Success: true,
		Message: MsgUpdated,
		Next:    nav.ProductDetail{Product: product},
		Product: &product,
	}
}

// Delete removes one product. Callers normally go through ConfirmDelete.
func (s *Service) Delete(ctx context.Context, id string) Outcome {
	if id == "" {
		return failure(fmt.Sprintf(failedDelete, missingID))
	}
	if _, err := s.caller.Call(ctx, gateway.ActionDelete, map[string]any{
		gateway.FieldID: id,
	}); err != nil {
		s.logger.Warn("Delete product failed", zap.String("id", id), zap.Error(err))
		return failure(fmt.Sprintf(failedDelete, err.Error()))
	}

	s.logger.Info("Product deleted", zap.String("id", id))
	return Outcome{Success: true, Message: MsgDeleted, Reload: true}
}

// ClearAll removes every product. Callers normally go through ConfirmClearAll.
func (s *Service) ClearAll(ctx context.Context) Outcome {
	if _, err := s.caller.Call(ctx, gateway.ActionClearAll, nil); err != nil {
		s.logger.Warn("Clear all failed", zap.Error(err))
		return failure(fmt.Sprintf(failedClear, err.Error()))
	}

	s.logger.Info("Catalog cleared")
	return Outcome{Success: true, Message: MsgCleared, ClearLocal: true}
}

// ConfirmDelete asks first and deletes only on an explicit yes. done receives
// the outcome; it is not called when the user cancels.
func (s *Service) ConfirmDelete(ctx context.Context, confirmer Confirmer, id string, done func(Outcome)) {
	confirmer.Confirm(ConfirmDeleteMessage, func(ok bool) {
		if !ok {
			s.logger.Debug("Delete cancelled", zap.String("id", id))
			return
		}
		done(s.Delete(ctx, id))
	})
}

// ConfirmClearAll is ConfirmDelete for the whole catalog, with the stronger warning
func (s *Service) ConfirmClearAll(ctx context.Context, confirmer Confirmer, done func(Outcome)) {
	confirmer.Confirm(ConfirmClearAllMessage, func(ok bool) {
		if !ok {
			s.logger.Debug("Clear all cancelled")
			return
		}
		done(s.ClearAll(ctx))
	})
}

func failure(message string) Outcome {
	return Outcome{Success: false, Message: message}
}

// productPayload is the wire form of a product: price as a number, imageUrl
// always a list
func productPayload(p model.Product) map[string]any {
	images := []string(p.ImageURL)
	if images == nil {
		images = []string{}
	}
	return map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       float64(p.Price),
		"category":    string(p.Category),
		"imageUrl":    images,
	}
}
