package constant

// Greeting keywords that always reset the conversation to the main menu.
// Matched case-insensitively against the full message text.
var GreetingKeywords = []string{
	"hi",
	"hola",
	"menu",
	"menú",
	"opciones",
	"inicio",
	"ayuda",
	"hola, necesito ayuda",
}

// BrandKeyword resets to the main menu when it appears anywhere in the text.
const BrandKeyword = "duco"

// Canned user-facing replies. Spanish on purpose, this is the product's language.
const (
	MenuHeader = "¡Hola! 👋 Bienvenido a DucoChat.\nEstamos aquí para ayudarte 24/7.\n\n📋 *Opciones disponibles:*\n\n"
	MenuFooter = "\n💡 *Escribe el número de la opción que te interesa*"

	MenuEmptyText = "¡Hola! 👋 Bienvenido a DucoChat.\n\nPor ahora no hay categorías disponibles. Intenta más tarde."
	MenuErrorText = "⚠️ Error al cargar el menú."

	CategoryListHeader = "📚 *%s*\n\nSelecciona una pregunta:\n\n"
	CategoryListFooter = "\n💡 Escribe el número de la pregunta\n🔙 Escribe *Menú* para volver al inicio."

	AnswerFooterText = "🔙 Escribe *Menú* para volver al inicio.\n\nEn caso de no estar conforme puedes acercarte al centro académico."

	InvalidCategoryText  = "❌ Número inválido. Escribe *menú* para ver las opciones."
	QuestionNotFoundText = "Pregunta no encontrada. Escribe *Menú* para volver."
	EmptyCategoryText    = "❌ No hay preguntas disponibles en esta categoría."
	FallbackText         = "No entendí tu mensaje. Escribe *Menú* para ver las opciones."
)
