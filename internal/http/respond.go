package http

import (
	"encoding/xml"
	"strings"

	"github.com/gin-gonic/gin"
)

// M es el payload generico de las respuestas. A diferencia de gin.H
// serializa a XML conservando el nombre del elemento raiz, para poder
// envolver toda respuesta en <response>.
type M map[string]any

// MarshalXML serializa cada clave como un elemento hijo. Los valores
// nil se omiten; los slices repiten el elemento por item. Cuando el
// encoder deriva el nombre del tipo (raiz del documento) se usa
// <response>; anidado conserva el nombre de la clave.
func (m M) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if start.Name.Local == "" || start.Name.Local == "M" {
		start.Name.Local = "response"
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for key, value := range m {
		if value == nil {
			continue
		}
		elem := xml.StartElement{Name: xml.Name{Local: key}}
		if err := e.EncodeElement(value, elem); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// respond serializa el payload como JSON o, si el cliente lo pide via
// ?format=xml o el header Accept, como XML bajo un raiz <response>.
func respond(c *gin.Context, status int, payload M) {
	if wantsXML(c) {
		c.XML(status, payload)
		return
	}
	c.JSON(status, payload)
}

func wantsXML(c *gin.Context) bool {
	if strings.EqualFold(c.Query("format"), "xml") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/xml")
}
