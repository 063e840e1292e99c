package mailer

import (
	"bytes"
	"html/template"
)

const ReceiptSubject = "CASTLE CLOTHING | Detalles de tu compra"

// Receipt is the already formatted content of a purchase e-mail.
type Receipt struct {
	CustomerName       string
	ProductName        string
	ProductDescription string
	ProductPrice       string
	Quantity           string
	Address            string
	Phone              string
	Alias              string
	Total              string
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`
<h1>¡Gracias por tu compra, {{.CustomerName}}!</h1>
<p>Has comprado el siguiente producto:</p>
<ul>
    <li><strong>Producto:</strong> {{.ProductName}}</li>
    <li><strong>Descripción:</strong> {{.ProductDescription}}</li>
    <li><strong>Precio:</strong> {{.ProductPrice}}</li>
</ul>
<p><strong>Cantidad:</strong> {{.Quantity}}</p>
<p><strong>Dirección de envío:</strong> {{.Address}}</p>
<p><strong>Número de celular:</strong> {{.Phone}}</p>
<p>Para finalizar la compra, transfiere <strong>{{.Total}}</strong> a este alias: <strong>{{.Alias}}</strong>.</p>
<p>¡Gracias por elegirnos!</p>

<h3>El envío comenzará 72 horas después de abonar la compra.</h3>

<h2>Castle Clothing...</h2>
`))

func RenderReceipt(r Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
