package http

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// Extensiones de fondo admitidas.
var (
	imageExtensions = []string{"png", "jpg", "jpeg", "gif"}
	videoExtensions = []string{"mp4"}
)

const themeCookie = "theme_color"

// CustomiseHandler maneja la personalización de la página: color de tema
// persistido en cookie y fondo (imagen o video) subido al directorio de
// estáticos.
type CustomiseHandler struct {
	backgroundsDir string
	defaultColor   string
}

// NewCustomiseHandler construye el handler.
func NewCustomiseHandler(backgroundsDir, defaultColor string) *CustomiseHandler {
	return &CustomiseHandler{backgroundsDir: backgroundsDir, defaultColor: defaultColor}
}

// CustomiseResponse estado actual de la personalización.
type CustomiseResponse struct {
	ThemeColor     string `json:"theme_color"`
	BackgroundURL  string `json:"background_url,omitempty"`
	BackgroundType string `json:"background_type,omitempty"` // image | video
}

// Get godoc
// @Summary      Personalización vigente (color de tema y fondo)
// @Tags         customise
// @Produce      json
// @Success      200  {object}  CustomiseResponse
// @Router       /api/customise [get]
func (h *CustomiseHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.current(c))
}

// Set godoc
// @Summary      Cambiar color de tema o fondo de página
// @Description  Multipart: theme_color fija la cookie por un año; background
// @Description  sube una imagen (png/jpg/jpeg/gif) o video (mp4) que
// @Description  reemplaza cualquier fondo anterior; remove_background
// @Description  elimina el fondo vigente.
// @Tags         customise
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  CustomiseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customise [post]
func (h *CustomiseHandler) Set(c *fiber.Ctx) error {
	if c.FormValue("remove_background") != "" {
		h.removeBackgrounds()
		return c.JSON(h.current(c))
	}

	color := c.FormValue(themeCookie)
	if color != "" {
		c.Cookie(&fiber.Cookie{
			Name:   themeCookie,
			Value:  color,
			MaxAge: 60 * 60 * 24 * 365,
		})
	}

	file, fileErr := c.FormFile("background")
	if fileErr != nil && color == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nada que cambiar: envíe theme_color, background o remove_background"})
	}
	if fileErr == nil && file != nil {
		if err := h.saveBackground(c, file); err != nil {
			return err
		}
	}

	resp := h.current(c)
	if color != "" {
		// Refleja el color recién fijado, no la cookie entrante.
		resp.ThemeColor = color
	}
	return c.JSON(resp)
}

// saveBackground valida la extensión, limpia fondos anteriores y guarda el
// archivo como background.<ext>.
func (h *CustomiseHandler) saveBackground(c *fiber.Ctx, file *multipart.FileHeader) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedExtension(ext) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "tipo de archivo no admitido: suba una imagen o un video MP4"})
	}
	if err := os.MkdirAll(h.backgroundsDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_IO", Message: err.Error()})
	}
	h.removeBackgrounds()

	dest := filepath.Join(h.backgroundsDir, "background."+ext)
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_IO", Message: err.Error()})
	}
	return nil
}

// removeBackgrounds borra cualquier background.* previo; los archivos
// inexistentes se ignoran.
func (h *CustomiseHandler) removeBackgrounds() {
	for _, ext := range allExtensions() {
		_ = os.Remove(filepath.Join(h.backgroundsDir, "background."+ext))
	}
}

// current arma el estado vigente: el video manda sobre las imágenes.
func (h *CustomiseHandler) current(c *fiber.Ctx) CustomiseResponse {
	resp := CustomiseResponse{ThemeColor: c.Cookies(themeCookie, h.defaultColor)}
	for _, ext := range videoExtensions {
		if _, err := os.Stat(filepath.Join(h.backgroundsDir, "background."+ext)); err == nil {
			resp.BackgroundURL = "/static/backgrounds/background." + ext
			resp.BackgroundType = "video"
			return resp
		}
	}
	for _, ext := range imageExtensions {
		if _, err := os.Stat(filepath.Join(h.backgroundsDir, "background."+ext)); err == nil {
			resp.BackgroundURL = "/static/backgrounds/background." + ext
			resp.BackgroundType = "image"
			return resp
		}
	}
	return resp
}

func allExtensions() []string {
	exts := make([]string, 0, len(imageExtensions)+len(videoExtensions))
	exts = append(exts, imageExtensions...)
	exts = append(exts, videoExtensions...)
	return exts
}

func allowedExtension(ext string) bool {
	for _, e := range allExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}
