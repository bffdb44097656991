package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
	"github.com/mikiasgoitom/Storefront/internal/handler/http/dto"
	"github.com/mikiasgoitom/Storefront/internal/infrastructure/uuidgen"
	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

type ProductHandler struct {
	productUsecase usecasecontract.IProductUseCase
}

func NewProductHandler(productUsecase usecasecontract.IProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// productIDParam reads :productID and rejects malformed ids before any lookup.
func productIDParam(c *gin.Context) (string, bool) {
	productID := c.Param("productID")
	if !uuidgen.IsValid(productID) {
		ErrorHandler(c, http.StatusBadRequest, "Invalid product ID format")
		return "", false
	}
	return productID, true
}

func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	product, err := h.productUsecase.CreateProduct(c.Request.Context(), req.Name, req.Image, req.Description)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToProductResponse(*product))
}

func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	product, err := h.productUsecase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToProductResponse(*product))
}

// ListProductsHandler passes the raw query values through; defaults and caps
// are applied by the usecase.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	result, err := h.productUsecase.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Data:       dto.ToProductResponses(result.Products),
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages(),
	})
}

func (h *ProductHandler) LikeProductHandler(c *gin.Context) {
	h.toggleReaction(c, entity.ReactionLike, "Product liked successfully", "Product unliked successfully")
}

func (h *ProductHandler) DislikeProductHandler(c *gin.Context) {
	h.toggleReaction(c, entity.ReactionDislike, "Product disliked successfully", "Product undisliked successfully")
}

// toggleReaction reports the state the toggle itself saved.
func (h *ProductHandler) toggleReaction(c *gin.Context, kind entity.ReactionType, onMsg, offMsg string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	reaction, err := h.productUsecase.ToggleReaction(c.Request.Context(), userID, productID, kind)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	msg := offMsg
	if reaction == kind {
		msg = onMsg
	}
	SuccessHandler(c, http.StatusOK, dto.ReactionResponse{Message: msg, Reaction: string(reaction)})
}

func (h *ProductHandler) GetReactionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	reaction, err := h.productUsecase.GetUserReaction(c.Request.Context(), userID, productID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ReactionResponse{Message: "Reaction retrieved successfully", Reaction: string(reaction)})
}
