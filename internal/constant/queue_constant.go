package constant

// InboundMessagesTopic is the in-process queue topic between the webhook
// controller and the bot worker.
const InboundMessagesTopic = "whatsapp_inbound_messages"
