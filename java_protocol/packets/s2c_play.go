package packets

import (
	jp "github.com/go-mclib/servercore/java_protocol"
	ns "github.com/go-mclib/servercore/net_structures"
)

// S2CKeepAlivePlayPacket represents "Clientbound Keep Alive (play)"
//
// > The server will frequently send out a keep-alive, each containing a random ID.
// The client must respond with the same payload.
// If the client does not respond to a Keep Alive packet within 15 seconds after it was sent,
// the server kicks the client. Vice versa, if the server does not send any keep-alives for 20 seconds,
// the client will disconnect and yields a "Timed out" exception.
//
// > The vanilla server uses a system-dependent time in milliseconds to generate the keep alive ID value.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(play)
var S2CKeepAlivePlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x26)

type S2CKeepAlivePlayPacketData struct {
	KeepAliveID ns.Long
}

// S2CSystemChatMessagePacket represents "System Chat Message"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#System_Chat_Message
var S2CSystemChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x62)

type S2CSystemChatMessagePacketData struct {
	Content ns.JSONTextComponent
	Overlay ns.Boolean
}

// S2CPingPlayPacket represents "Ping (play)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(play)
var S2CPingPlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x33)

type S2CPingPlayPacketData struct {
	ID ns.Int
}

// S2CBlockEntityDataPacket represents "Block Entity Data": one block
// entity's kind and NBT, emitted per modified entry after a chunk
// flush.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Block_Entity_Data
var S2CBlockEntityDataPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x07)

type S2CBlockEntityDataPacketData struct {
	Location ns.Position
	Type     ns.VarInt
	NBTData  ns.NBT
}

// S2CBlockUpdatePacket represents "Block Update": the single-block
// delta a chunk flush emits when exactly one block changed in a
// section.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Block_Update
var S2CBlockUpdatePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x09)

type S2CBlockUpdatePacketData struct {
	Location ns.Position
	BlockID  ns.VarInt
}

// S2CCloseContainerPacket represents "Close Container (clientbound)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Close_Container_(clientbound)
var S2CCloseContainerPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x0F)

type S2CCloseContainerPacketData struct {
	WindowID ns.UnsignedByte
}

// S2CSetContainerContentPacket represents "Set Container Content": the
// full-inventory resync an inventory flush emits when two or more slots
// changed in a tick.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Content
var S2CSetContainerContentPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x10)

type S2CSetContainerContentPacketData struct {
	WindowID    ns.UnsignedByte
	StateID     ns.VarInt
	SlotData    ns.PrefixedArray[ns.ItemSlot]
	CarriedItem ns.ItemSlot
}

// S2CSetContainerSlotPacket represents "Set Container Slot": the
// single-slot update an inventory flush emits when exactly one slot
// changed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Slot
var S2CSetContainerSlotPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x12)

type S2CSetContainerSlotPacketData struct {
	WindowID ns.Byte
	StateID  ns.VarInt
	Slot     ns.Short
	SlotData ns.ItemSlot
}

// S2CDeleteMessagePacket represents "Delete Message": tells clients to
// hide a previously-delivered signed message, referenced by cache index
// or inline signature.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Delete_Message
var S2CDeleteMessagePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x16)

type S2CDeleteMessagePacketData struct {
	Target ns.PreviousMessage
}

// S2CChunkDataPacket represents "Chunk Data and Update Light": the full
// init payload for a chunk entering a client's view, built from the
// chunk's cached init bytes plus its block entities and light arrays.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chunk_Data_and_Update_Light
var S2CChunkDataPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x20)

type S2CChunkDataPacketData struct {
	ChunkX    ns.Int
	ChunkZ    ns.Int
	ChunkData ns.ChunkData
	LightData ns.LightData
}

// S2COpenScreenPacket represents "Open Screen": announces a container
// window with its freshly allocated window id before the contents
// follow in a Set Container Content.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Open_Screen
var S2COpenScreenPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x2C)

type S2COpenScreenPacketData struct {
	WindowID    ns.VarInt
	WindowType  ns.VarInt
	WindowTitle ns.JSONTextComponent
}

// S2CPlayerChatMessagePacket represents "Player Chat Message": a signed
// chat message forwarded to recipients, with each previously-seen
// signature compressed to a cache index where the recipient is known to
// hold it.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Chat_Message
var S2CPlayerChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x31)

type S2CPlayerChatMessagePacketData struct {
	Sender           ns.UUID
	Index            ns.VarInt
	MessageSignature ns.PrefixedOptional[ns.FixedByteArray] `mc:"length:256"`
	Message          ns.String
	Timestamp        ns.Long
	Salt             ns.Long
	PreviousMessages ns.PrefixedArray[ns.PreviousMessage]
	UnsignedContent  ns.PrefixedOptional[ns.JSONTextComponent]
	FilterType       ns.VarInt
	FilterTypeBits   ns.Optional[ns.BitSet] `mc:"if:FilterType,value:2"`
	ChatType         ns.VarInt
	SenderName       ns.JSONTextComponent
	TargetName       ns.PrefixedOptional[ns.JSONTextComponent]
}

// S2CUpdateSectionBlocksPacket represents "Update Section Blocks": the
// multi-block delta a chunk flush emits when two or more blocks changed
// in one section, each entry packed as
// (block_id << 12 | x << 8 | z << 4 | y).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Update_Section_Blocks
var S2CUpdateSectionBlocksPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x3F)

type S2CUpdateSectionBlocksPacketData struct {
	ChunkSectionPosition ns.Long
	SuppressLightUpdates ns.Boolean
	Blocks               ns.PrefixedArray[ns.VarLong]
}
