package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	adminMiddleware := standardMiddleware.Append(app.requireAdmin)

	mux := pat.New()

	// Items. The category route is registered before the id route so that
	// /api/items/category/... is not captured as an item id.
	mux.Get("/api/items/category/:category", standardMiddleware.ThenFunc(app.itemHandler.GetItemsByCategory))
	mux.Get("/api/items/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Get("/api/items", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Post("/api/items", adminMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Put("/api/items/:id", adminMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/api/items/:id", adminMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Categories
	mux.Get("/api/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))

	// Auth. /api/admin/login is an alias kept for the admin pages.
	mux.Post("/api/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/api/admin/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/api/admin/register", adminMiddleware.ThenFunc(app.userHandler.RegisterAdmin))

	// Testimonials
	mux.Get("/api/testimonials", standardMiddleware.ThenFunc(app.testimonialHandler.GetTestimonials))
	mux.Post("/api/testimonials", standardMiddleware.ThenFunc(app.testimonialHandler.CreateTestimonial))
	mux.Del("/api/testimonials/:id", adminMiddleware.ThenFunc(app.testimonialHandler.DeleteTestimonial))

	// Contacts
	mux.Get("/api/contacts", adminMiddleware.ThenFunc(app.contactHandler.GetContacts))
	mux.Post("/api/contacts", standardMiddleware.ThenFunc(app.contactHandler.CreateContact))
	mux.Put("/api/contacts/:id/read", adminMiddleware.ThenFunc(app.contactHandler.SetContactRead))
	mux.Del("/api/contacts/:id", adminMiddleware.ThenFunc(app.contactHandler.DeleteContact))

	// Locally stored item images
	mux.Get("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.uploadDir))))

	return mux
}
