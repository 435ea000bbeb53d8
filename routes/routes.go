package routes

import (
	"net/http"
	"strings"

	"aspcranes/handlers"

	"go.uber.org/zap"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	logger *zap.Logger,
	userHandler *handlers.UserHandler,
	customerHandler *handlers.CustomerHandler,
	leadHandler *handlers.LeadHandler,
	dealHandler *handlers.DealHandler,
	equipmentHandler *handlers.EquipmentHandler,
	quotationHandler *handlers.QuotationHandler,
	jobHandler *handlers.JobHandler,
	chatHandler *handlers.ChatHandler,
	profileHandler *handlers.ProfileHandler,
	pdfHandler *handlers.PDFHandler,
) {
	wrap := func(fn http.HandlerFunc) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(logger, fn)))
	}

	http.Handle("/health", wrap(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))

	// User routes
	http.Handle("/api/users/signup", wrap(userHandler.Signup))
	http.Handle("/api/users/login", wrap(userHandler.Login))

	// Customer routes
	http.Handle("/api/customers", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			customerHandler.CreateCustomer(w, r)
		case http.MethodGet:
			customerHandler.GetAllCustomers(w, r)
		case http.MethodDelete:
			customerHandler.DeleteCustomer(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/api/customers/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/customers/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			customerHandler.GetCustomerByID(w, r, id)
		case http.MethodPut:
			customerHandler.UpdateCustomer(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Lead routes
	http.Handle("/api/leads", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			leadHandler.CreateLead(w, r)
		case http.MethodGet:
			leadHandler.GetAllLeads(w, r)
		case http.MethodDelete:
			leadHandler.DeleteLead(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/api/leads/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/leads/"):]
		if strings.HasSuffix(id, "/status") {
			id = strings.TrimSuffix(id, "/status")
			if r.Method == http.MethodPut && id != "" {
				leadHandler.UpdateLeadStatus(w, r, id)
				return
			}
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			leadHandler.GetLeadByID(w, r, id)
		case http.MethodPut:
			leadHandler.UpdateLead(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Deal routes
	http.Handle("/api/deals", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			dealHandler.CreateDeal(w, r)
		case http.MethodGet:
			dealHandler.GetAllDeals(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Equipment routes
	http.Handle("/api/equipment", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			equipmentHandler.CreateEquipment(w, r)
		case http.MethodGet:
			equipmentHandler.GetAllEquipment(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/api/equipment/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/equipment/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			equipmentHandler.GetEquipmentByID(w, r, id)
		case http.MethodPut:
			equipmentHandler.UpdateEquipment(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Quotation routes
	http.Handle("/api/quotations", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			quotationHandler.CreateQuotation(w, r)
		case http.MethodGet:
			quotationHandler.GetAllQuotations(w, r)
		case http.MethodDelete:
			quotationHandler.DeleteQuotation(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/api/quotations/pdf", wrap(pdfHandler.QuotationPDF))
	http.Handle("/api/quotations/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/quotations/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			quotationHandler.GetQuotationByID(w, r, id)
		case http.MethodPut:
			quotationHandler.UpdateQuotationStatus(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Job routes
	http.Handle("/api/jobs", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			jobHandler.CreateJob(w, r)
		case http.MethodGet:
			jobHandler.GetAllJobs(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/api/jobs/", wrap(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/jobs/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			jobHandler.GetJobByID(w, r, id)
		case http.MethodPut:
			jobHandler.UpdateJobStatus(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Assistant routes
	http.Handle("/api/chat/assistant", wrap(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		chatHandler.Chat(w, r)
	}))
	http.Handle("/api/chat/history", wrap(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		chatHandler.GetHistory(w, r)
	}))

	// Company profile routes
	http.Handle("/api/company", wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			profileHandler.SaveProfile(w, r)
		case http.MethodGet:
			profileHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}
