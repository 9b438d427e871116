package dto

import (
	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

func FromTenant(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Domain:    tenant.Domain,
		APIKey:    tenant.APIKey,
		IsActive:  tenant.IsActive,
		Timezone:  tenant.Timezone,
		Currency:  tenant.Currency,
		RateLimit: tenant.RateLimit,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *FromTenant(&tenants[i])
	}
	return responses
}

// ToProduct converts a CreateProductRequest to a Product domain model. The
// tenant id is left to the query scoper to stamp or verify.
func (r *CreateProductRequest) ToProduct() *domain.Product {
	return &domain.Product{
		TenantID:      r.TenantID,
		Name:          r.Name,
		Description:   r.Description,
		SKU:           r.SKU,
		Category:      r.Category,
		Price:         r.Price,
		CostPrice:     r.CostPrice,
		StockQuantity: r.StockQuantity,
		MinStockLevel: r.MinStockLevel,
		IsActive:      true,
		Tags:          r.Tags,
	}
}

func FromProduct(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:            product.ID,
		TenantID:      product.TenantID,
		Name:          product.Name,
		Description:   product.Description,
		SKU:           product.SKU,
		Category:      product.Category,
		Price:         product.Price,
		CostPrice:     product.CostPrice,
		ProfitMargin:  product.ProfitMargin(),
		StockQuantity: product.StockQuantity,
		MinStockLevel: product.MinStockLevel,
		IsActive:      product.IsActive,
		Tags:          product.Tags,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *FromProduct(&products[i])
	}
	return responses
}

func (r *CreateCustomerRequest) ToCustomer() *domain.Customer {
	return &domain.Customer{
		TenantID:   r.TenantID,
		Email:      r.Email,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		IsActive:   true,
		IsVIP:      r.IsVIP,
	}
}

func FromCustomer(customer *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         customer.ID,
		TenantID:   customer.TenantID,
		Email:      customer.Email,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Phone:      customer.Phone,
		City:       customer.City,
		State:      customer.State,
		PostalCode: customer.PostalCode,
		Country:    customer.Country,
		IsActive:   customer.IsActive,
		IsVIP:      customer.IsVIP,
		CreatedAt:  customer.CreatedAt,
		UpdatedAt:  customer.UpdatedAt,
	}
}

func FromCustomers(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *FromCustomer(&customers[i])
	}
	return responses
}

// ToOrder converts a CreateOrderRequest to an Order domain model. Item
// snapshots and totals are completed by the repository against live product
// rows.
func (r *CreateOrderRequest) ToOrder() *domain.Order {
	items := make([]domain.OrderItem, len(r.Items))
	subtotal := 0.0
	for i, item := range r.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	return &domain.Order{
		TenantID:        r.TenantID,
		CustomerID:      r.CustomerID,
		Subtotal:        subtotal,
		TaxAmount:       r.TaxAmount,
		ShippingAmount:  r.ShippingAmount,
		DiscountAmount:  r.DiscountAmount,
		TotalAmount:     subtotal + r.TaxAmount + r.ShippingAmount - r.DiscountAmount,
		PaymentMethod:   r.PaymentMethod,
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		Notes:           r.Notes,
		Items:           items,
	}
}

func FromOrder(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}

	return &OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		TenantID:        order.TenantID,
		CustomerID:      order.CustomerID,
		Status:          string(order.Status),
		Subtotal:        order.Subtotal,
		TaxAmount:       order.TaxAmount,
		ShippingAmount:  order.ShippingAmount,
		DiscountAmount:  order.DiscountAmount,
		TotalAmount:     order.TotalAmount,
		PaymentStatus:   string(order.PaymentStatus),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		Notes:           order.Notes,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
	}
}

func FromOrders(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *FromOrder(&orders[i])
	}
	return responses
}

func FromPayment(payment *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                    payment.ID,
		TenantID:              payment.TenantID,
		OrderID:               payment.OrderID,
		Amount:                payment.Amount,
		Currency:              payment.Currency,
		Status:                string(payment.Status),
		Provider:              payment.Provider,
		ExternalPaymentID:     payment.ExternalPaymentID,
		ExternalTransactionID: payment.ExternalTransactionID,
		PaymentData:           payment.PaymentData,
		FailureReason:         payment.FailureReason,
		CreatedAt:             payment.CreatedAt,
		ProcessedAt:           payment.ProcessedAt,
	}
}

func FromPayments(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *FromPayment(&payments[i])
	}
	return responses
}

func FromStockEvent(event *domain.StockEvent) *StockEventResponse {
	return &StockEventResponse{
		ID:             event.ID,
		TenantID:       event.TenantID,
		ProductID:      event.ProductID,
		EventType:      string(event.EventType),
		QuantityChange: event.QuantityChange,
		QuantityAfter:  event.QuantityAfter,
		ReferenceID:    event.ReferenceID,
		CreatedAt:      event.CreatedAt,
	}
}

func FromStockEvents(events []domain.StockEvent) []StockEventResponse {
	responses := make([]StockEventResponse, len(events))
	for i := range events {
		responses[i] = *FromStockEvent(&events[i])
	}
	return responses
}

func FromExportJob(job *domain.ExportJob) *ExportJobResponse {
	return &ExportJobResponse{
		ID:          job.ID,
		TenantID:    job.TenantID,
		Resource:    string(job.Resource),
		Format:      string(job.Format),
		Status:      string(job.Status),
		RowCount:    job.RowCount,
		ObjectKey:   job.ObjectKey,
		Error:       job.Error,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
	}
}

func FromExportJobs(jobs []domain.ExportJob) []ExportJobResponse {
	responses := make([]ExportJobResponse, len(jobs))
	for i := range jobs {
		responses[i] = *FromExportJob(&jobs[i])
	}
	return responses
}

func FromSalesSummary(summary *domain.SalesSummary) *SalesSummaryResponse {
	resp := &SalesSummaryResponse{
		TotalRevenue:      summary.TotalRevenue,
		OrderCount:        summary.OrderCount,
		AverageOrderValue: summary.AverageOrderValue,
		UniqueCustomers:   summary.UniqueCustomers,
		OrdersByStatus:    make(map[string]int64, len(summary.OrdersByStatus)),
		RevenueByStatus:   make(map[string]float64, len(summary.RevenueByStatus)),
	}
	for status, count := range summary.OrdersByStatus {
		resp.OrdersByStatus[string(status)] = count
	}
	for status, revenue := range summary.RevenueByStatus {
		resp.RevenueByStatus[string(status)] = revenue
	}
	return resp
}

func FromProductSales(sales []domain.ProductSales) []ProductSalesResponse {
	responses := make([]ProductSalesResponse, len(sales))
	for i, s := range sales {
		responses[i] = ProductSalesResponse{
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			ProductSKU:   s.ProductSKU,
			QuantitySold: s.QuantitySold,
			Revenue:      s.Revenue,
		}
	}
	return responses
}
