package httpserver

const (
	msgInvalidBody   = "Solicitud inválida"
	msgServerError   = "Error en el servidor"
	msgUserNotFound  = "Usuario no encontrado"
	msgWrongPassword = "Contraseña incorrecta"
	msgLoggedIn      = "Usuario autenticado correctamente"

	msgListFailed      = "Error al obtener productos"
	msgMissingImage    = "No se proporcionó una imagen"
	msgCreateFailed    = "Error al crear producto"
	msgCreated         = "Producto creado correctamente"
	msgProductNotFound = "Producto no encontrado"
	msgUpdateFailed    = "Error al actualizar producto"
	msgUpdated         = "Producto actualizado correctamente"
	msgDeleteFailed    = "Error al eliminar producto"
	msgDeleted         = "Producto eliminado correctamente"

	msgMailFailed = "Error al enviar el correo"
	msgMailSent   = "Correo enviado correctamente"
)
