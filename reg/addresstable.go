package reg

// cellKind tags what kind of storage a register-file address resolves to.
type cellKind int

const (
	cellSFR cellKind = iota
	cellStatus
	cellGPR
	cellIndirect     // INDF/IADDR: indirect addressing via FSR, not implemented
	cellUnimplemented // read returns 0 with a warning; write is fatal
	cellReserved      // read returns 0 silently; write is fatal
)

// cellRef is the resolved target of a (bank, f) register-file address: an
// enum-tagged index into one of Registers' storage arrays, per spec's
// guidance to prefer this over a precomputed pointer table.
type cellRef struct {
	kind cellKind
	sfr  sfrID
	idx  int // valid when kind == cellGPR
}

// addressTable[f][bank] gives the cell resolved for file address f in the
// given bank. Transcribed from original_source's register_map! table, which
// is itself transcribed from the PIC16F88 datasheet's register file map.
var addressTable = [128][4]cellRef{
	0x00: {{kind: cellIndirect}, {kind: cellIndirect}, {kind: cellIndirect}, {kind: cellIndirect}},
	0x01: {{kind: cellSFR, sfr: idTMR0}, {kind: cellSFR, sfr: idOPTIONREG}, {kind: cellSFR, sfr: idTMR0}, {kind: cellSFR, sfr: idOPTIONREG}},
	0x02: {{kind: cellSFR, sfr: idPCL}, {kind: cellSFR, sfr: idPCL}, {kind: cellSFR, sfr: idPCL}, {kind: cellSFR, sfr: idPCL}},
	0x03: {{kind: cellStatus}, {kind: cellStatus}, {kind: cellStatus}, {kind: cellStatus}},
	0x04: {{kind: cellSFR, sfr: idFSR}, {kind: cellSFR, sfr: idFSR}, {kind: cellSFR, sfr: idFSR}, {kind: cellSFR, sfr: idFSR}},
	0x05: {{kind: cellSFR, sfr: idPORTA}, {kind: cellSFR, sfr: idTRISA}, {kind: cellSFR, sfr: idWDTCON}, {kind: cellUnimplemented}},
	0x06: {{kind: cellSFR, sfr: idPORTB}, {kind: cellSFR, sfr: idTRISB}, {kind: cellSFR, sfr: idPORTB}, {kind: cellSFR, sfr: idTRISB}},
	0x07: {{kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}},
	0x08: {{kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}},
	0x09: {{kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}, {kind: cellUnimplemented}},
	0x0A: {{kind: cellSFR, sfr: idPCLATH}, {kind: cellSFR, sfr: idPCLATH}, {kind: cellSFR, sfr: idPCLATH}, {kind: cellSFR, sfr: idPCLATH}},
	0x0B: {{kind: cellSFR, sfr: idINTCON}, {kind: cellSFR, sfr: idINTCON}, {kind: cellSFR, sfr: idINTCON}, {kind: cellSFR, sfr: idINTCON}},
	0x0C: {{kind: cellSFR, sfr: idPIR1}, {kind: cellSFR, sfr: idPIE1}, {kind: cellSFR, sfr: idEEDATA}, {kind: cellSFR, sfr: idEECON1}},
	0x0D: {{kind: cellSFR, sfr: idPIR2}, {kind: cellSFR, sfr: idPIE2}, {kind: cellSFR, sfr: idEEADR}, {kind: cellSFR, sfr: idEECON2}},
	0x0E: {{kind: cellSFR, sfr: idTMR1L}, {kind: cellSFR, sfr: idPCON}, {kind: cellSFR, sfr: idEEDATH}, {kind: cellReserved}},
	0x0F: {{kind: cellSFR, sfr: idTMR1H}, {kind: cellSFR, sfr: idOSCCON}, {kind: cellSFR, sfr: idEEADRH}, {kind: cellReserved}},
	0x10: {{kind: cellSFR, sfr: idT1CON}, {kind: cellSFR, sfr: idOSCTUNE}, {kind: cellGPR, idx: 176}, {kind: cellGPR, idx: 272}},
	0x11: {{kind: cellSFR, sfr: idTMR2}, {kind: cellUnimplemented}, {kind: cellGPR, idx: 177}, {kind: cellGPR, idx: 273}},
	0x12: {{kind: cellSFR, sfr: idT2CON}, {kind: cellSFR, sfr: idPR2}, {kind: cellGPR, idx: 178}, {kind: cellGPR, idx: 274}},
	0x13: {{kind: cellSFR, sfr: idSSPBUF}, {kind: cellSFR, sfr: idSSPADD}, {kind: cellGPR, idx: 179}, {kind: cellGPR, idx: 275}},
	0x14: {{kind: cellSFR, sfr: idSSPCON}, {kind: cellSFR, sfr: idSSPSTAT}, {kind: cellGPR, idx: 180}, {kind: cellGPR, idx: 276}},
	0x15: {{kind: cellSFR, sfr: idCCPR1L}, {kind: cellUnimplemented}, {kind: cellGPR, idx: 181}, {kind: cellGPR, idx: 277}},
	0x16: {{kind: cellSFR, sfr: idCCPR1H}, {kind: cellUnimplemented}, {kind: cellGPR, idx: 182}, {kind: cellGPR, idx: 278}},
	0x17: {{kind: cellSFR, sfr: idCCP1CON}, {kind: cellUnimplemented}, {kind: cellGPR, idx: 183}, {kind: cellGPR, idx: 279}},
	0x18: {{kind: cellSFR, sfr: idRCSTA}, {kind: cellSFR, sfr: idTXSTA}, {kind: cellGPR, idx: 184}, {kind: cellGPR, idx: 280}},
	0x19: {{kind: cellSFR, sfr: idTXREG}, {kind: cellSFR, sfr: idSPBRG}, {kind: cellGPR, idx: 185}, {kind: cellGPR, idx: 281}},
	0x1A: {{kind: cellSFR, sfr: idRCREG}, {kind: cellUnimplemented}, {kind: cellGPR, idx: 186}, {kind: cellGPR, idx: 282}},
	0x1B: {{kind: cellUnimplemented}, {kind: cellSFR, sfr: idANSEL}, {kind: cellGPR, idx: 187}, {kind: cellGPR, idx: 283}},
	0x1C: {{kind: cellUnimplemented}, {kind: cellSFR, sfr: idCMCON}, {kind: cellGPR, idx: 188}, {kind: cellGPR, idx: 284}},
	0x1D: {{kind: cellUnimplemented}, {kind: cellSFR, sfr: idCVRCON}, {kind: cellGPR, idx: 189}, {kind: cellGPR, idx: 285}},
	0x1E: {{kind: cellSFR, sfr: idADRESH}, {kind: cellSFR, sfr: idADRESL}, {kind: cellGPR, idx: 190}, {kind: cellGPR, idx: 286}},
	0x1F: {{kind: cellSFR, sfr: idADCON0}, {kind: cellSFR, sfr: idADCON1}, {kind: cellGPR, idx: 191}, {kind: cellGPR, idx: 287}},
	0x20: {{kind: cellGPR, idx: 0}, {kind: cellGPR, idx: 96}, {kind: cellGPR, idx: 192}, {kind: cellGPR, idx: 288}},
	0x21: {{kind: cellGPR, idx: 1}, {kind: cellGPR, idx: 97}, {kind: cellGPR, idx: 193}, {kind: cellGPR, idx: 289}},
	0x22: {{kind: cellGPR, idx: 2}, {kind: cellGPR, idx: 98}, {kind: cellGPR, idx: 194}, {kind: cellGPR, idx: 290}},
	0x23: {{kind: cellGPR, idx: 3}, {kind: cellGPR, idx: 99}, {kind: cellGPR, idx: 195}, {kind: cellGPR, idx: 291}},
	0x24: {{kind: cellGPR, idx: 4}, {kind: cellGPR, idx: 100}, {kind: cellGPR, idx: 196}, {kind: cellGPR, idx: 292}},
	0x25: {{kind: cellGPR, idx: 5}, {kind: cellGPR, idx: 101}, {kind: cellGPR, idx: 197}, {kind: cellGPR, idx: 293}},
	0x26: {{kind: cellGPR, idx: 6}, {kind: cellGPR, idx: 102}, {kind: cellGPR, idx: 198}, {kind: cellGPR, idx: 294}},
	0x27: {{kind: cellGPR, idx: 7}, {kind: cellGPR, idx: 103}, {kind: cellGPR, idx: 199}, {kind: cellGPR, idx: 295}},
	0x28: {{kind: cellGPR, idx: 8}, {kind: cellGPR, idx: 104}, {kind: cellGPR, idx: 200}, {kind: cellGPR, idx: 296}},
	0x29: {{kind: cellGPR, idx: 9}, {kind: cellGPR, idx: 105}, {kind: cellGPR, idx: 201}, {kind: cellGPR, idx: 297}},
	0x2A: {{kind: cellGPR, idx: 10}, {kind: cellGPR, idx: 106}, {kind: cellGPR, idx: 202}, {kind: cellGPR, idx: 298}},
	0x2B: {{kind: cellGPR, idx: 11}, {kind: cellGPR, idx: 107}, {kind: cellGPR, idx: 203}, {kind: cellGPR, idx: 299}},
	0x2C: {{kind: cellGPR, idx: 12}, {kind: cellGPR, idx: 108}, {kind: cellGPR, idx: 204}, {kind: cellGPR, idx: 300}},
	0x2D: {{kind: cellGPR, idx: 13}, {kind: cellGPR, idx: 109}, {kind: cellGPR, idx: 205}, {kind: cellGPR, idx: 301}},
	0x2E: {{kind: cellGPR, idx: 14}, {kind: cellGPR, idx: 110}, {kind: cellGPR, idx: 206}, {kind: cellGPR, idx: 302}},
	0x2F: {{kind: cellGPR, idx: 15}, {kind: cellGPR, idx: 111}, {kind: cellGPR, idx: 207}, {kind: cellGPR, idx: 303}},
	0x30: {{kind: cellGPR, idx: 16}, {kind: cellGPR, idx: 112}, {kind: cellGPR, idx: 208}, {kind: cellGPR, idx: 304}},
	0x31: {{kind: cellGPR, idx: 17}, {kind: cellGPR, idx: 113}, {kind: cellGPR, idx: 209}, {kind: cellGPR, idx: 305}},
	0x32: {{kind: cellGPR, idx: 18}, {kind: cellGPR, idx: 114}, {kind: cellGPR, idx: 210}, {kind: cellGPR, idx: 306}},
	0x33: {{kind: cellGPR, idx: 19}, {kind: cellGPR, idx: 115}, {kind: cellGPR, idx: 211}, {kind: cellGPR, idx: 307}},
	0x34: {{kind: cellGPR, idx: 20}, {kind: cellGPR, idx: 116}, {kind: cellGPR, idx: 212}, {kind: cellGPR, idx: 308}},
	0x35: {{kind: cellGPR, idx: 21}, {kind: cellGPR, idx: 117}, {kind: cellGPR, idx: 213}, {kind: cellGPR, idx: 309}},
	0x36: {{kind: cellGPR, idx: 22}, {kind: cellGPR, idx: 118}, {kind: cellGPR, idx: 214}, {kind: cellGPR, idx: 310}},
	0x37: {{kind: cellGPR, idx: 23}, {kind: cellGPR, idx: 119}, {kind: cellGPR, idx: 215}, {kind: cellGPR, idx: 311}},
	0x38: {{kind: cellGPR, idx: 24}, {kind: cellGPR, idx: 120}, {kind: cellGPR, idx: 216}, {kind: cellGPR, idx: 312}},
	0x39: {{kind: cellGPR, idx: 25}, {kind: cellGPR, idx: 121}, {kind: cellGPR, idx: 217}, {kind: cellGPR, idx: 313}},
	0x3A: {{kind: cellGPR, idx: 26}, {kind: cellGPR, idx: 122}, {kind: cellGPR, idx: 218}, {kind: cellGPR, idx: 314}},
	0x3B: {{kind: cellGPR, idx: 27}, {kind: cellGPR, idx: 123}, {kind: cellGPR, idx: 219}, {kind: cellGPR, idx: 315}},
	0x3C: {{kind: cellGPR, idx: 28}, {kind: cellGPR, idx: 124}, {kind: cellGPR, idx: 220}, {kind: cellGPR, idx: 316}},
	0x3D: {{kind: cellGPR, idx: 29}, {kind: cellGPR, idx: 125}, {kind: cellGPR, idx: 221}, {kind: cellGPR, idx: 317}},
	0x3E: {{kind: cellGPR, idx: 30}, {kind: cellGPR, idx: 126}, {kind: cellGPR, idx: 222}, {kind: cellGPR, idx: 318}},
	0x3F: {{kind: cellGPR, idx: 31}, {kind: cellGPR, idx: 127}, {kind: cellGPR, idx: 223}, {kind: cellGPR, idx: 319}},
	0x40: {{kind: cellGPR, idx: 32}, {kind: cellGPR, idx: 128}, {kind: cellGPR, idx: 224}, {kind: cellGPR, idx: 320}},
	0x41: {{kind: cellGPR, idx: 33}, {kind: cellGPR, idx: 129}, {kind: cellGPR, idx: 225}, {kind: cellGPR, idx: 321}},
	0x42: {{kind: cellGPR, idx: 34}, {kind: cellGPR, idx: 130}, {kind: cellGPR, idx: 226}, {kind: cellGPR, idx: 322}},
	0x43: {{kind: cellGPR, idx: 35}, {kind: cellGPR, idx: 131}, {kind: cellGPR, idx: 227}, {kind: cellGPR, idx: 323}},
	0x44: {{kind: cellGPR, idx: 36}, {kind: cellGPR, idx: 132}, {kind: cellGPR, idx: 228}, {kind: cellGPR, idx: 324}},
	0x45: {{kind: cellGPR, idx: 37}, {kind: cellGPR, idx: 133}, {kind: cellGPR, idx: 229}, {kind: cellGPR, idx: 325}},
	0x46: {{kind: cellGPR, idx: 38}, {kind: cellGPR, idx: 134}, {kind: cellGPR, idx: 230}, {kind: cellGPR, idx: 326}},
	0x47: {{kind: cellGPR, idx: 39}, {kind: cellGPR, idx: 135}, {kind: cellGPR, idx: 231}, {kind: cellGPR, idx: 327}},
	0x48: {{kind: cellGPR, idx: 40}, {kind: cellGPR, idx: 136}, {kind: cellGPR, idx: 232}, {kind: cellGPR, idx: 328}},
	0x49: {{kind: cellGPR, idx: 41}, {kind: cellGPR, idx: 137}, {kind: cellGPR, idx: 233}, {kind: cellGPR, idx: 329}},
	0x4A: {{kind: cellGPR, idx: 42}, {kind: cellGPR, idx: 138}, {kind: cellGPR, idx: 234}, {kind: cellGPR, idx: 330}},
	0x4B: {{kind: cellGPR, idx: 43}, {kind: cellGPR, idx: 139}, {kind: cellGPR, idx: 235}, {kind: cellGPR, idx: 331}},
	0x4C: {{kind: cellGPR, idx: 44}, {kind: cellGPR, idx: 140}, {kind: cellGPR, idx: 236}, {kind: cellGPR, idx: 332}},
	0x4D: {{kind: cellGPR, idx: 45}, {kind: cellGPR, idx: 141}, {kind: cellGPR, idx: 237}, {kind: cellGPR, idx: 333}},
	0x4E: {{kind: cellGPR, idx: 46}, {kind: cellGPR, idx: 142}, {kind: cellGPR, idx: 238}, {kind: cellGPR, idx: 334}},
	0x4F: {{kind: cellGPR, idx: 47}, {kind: cellGPR, idx: 143}, {kind: cellGPR, idx: 239}, {kind: cellGPR, idx: 335}},
	0x50: {{kind: cellGPR, idx: 48}, {kind: cellGPR, idx: 144}, {kind: cellGPR, idx: 240}, {kind: cellGPR, idx: 336}},
	0x51: {{kind: cellGPR, idx: 49}, {kind: cellGPR, idx: 145}, {kind: cellGPR, idx: 241}, {kind: cellGPR, idx: 337}},
	0x52: {{kind: cellGPR, idx: 50}, {kind: cellGPR, idx: 146}, {kind: cellGPR, idx: 242}, {kind: cellGPR, idx: 338}},
	0x53: {{kind: cellGPR, idx: 51}, {kind: cellGPR, idx: 147}, {kind: cellGPR, idx: 243}, {kind: cellGPR, idx: 339}},
	0x54: {{kind: cellGPR, idx: 52}, {kind: cellGPR, idx: 148}, {kind: cellGPR, idx: 244}, {kind: cellGPR, idx: 340}},
	0x55: {{kind: cellGPR, idx: 53}, {kind: cellGPR, idx: 149}, {kind: cellGPR, idx: 245}, {kind: cellGPR, idx: 341}},
	0x56: {{kind: cellGPR, idx: 54}, {kind: cellGPR, idx: 150}, {kind: cellGPR, idx: 246}, {kind: cellGPR, idx: 342}},
	0x57: {{kind: cellGPR, idx: 55}, {kind: cellGPR, idx: 151}, {kind: cellGPR, idx: 247}, {kind: cellGPR, idx: 343}},
	0x58: {{kind: cellGPR, idx: 56}, {kind: cellGPR, idx: 152}, {kind: cellGPR, idx: 248}, {kind: cellGPR, idx: 344}},
	0x59: {{kind: cellGPR, idx: 57}, {kind: cellGPR, idx: 153}, {kind: cellGPR, idx: 249}, {kind: cellGPR, idx: 345}},
	0x5A: {{kind: cellGPR, idx: 58}, {kind: cellGPR, idx: 154}, {kind: cellGPR, idx: 250}, {kind: cellGPR, idx: 346}},
	0x5B: {{kind: cellGPR, idx: 59}, {kind: cellGPR, idx: 155}, {kind: cellGPR, idx: 251}, {kind: cellGPR, idx: 347}},
	0x5C: {{kind: cellGPR, idx: 60}, {kind: cellGPR, idx: 156}, {kind: cellGPR, idx: 252}, {kind: cellGPR, idx: 348}},
	0x5D: {{kind: cellGPR, idx: 61}, {kind: cellGPR, idx: 157}, {kind: cellGPR, idx: 253}, {kind: cellGPR, idx: 349}},
	0x5E: {{kind: cellGPR, idx: 62}, {kind: cellGPR, idx: 158}, {kind: cellGPR, idx: 254}, {kind: cellGPR, idx: 350}},
	0x5F: {{kind: cellGPR, idx: 63}, {kind: cellGPR, idx: 159}, {kind: cellGPR, idx: 255}, {kind: cellGPR, idx: 351}},
	0x60: {{kind: cellGPR, idx: 64}, {kind: cellGPR, idx: 160}, {kind: cellGPR, idx: 256}, {kind: cellGPR, idx: 352}},
	0x61: {{kind: cellGPR, idx: 65}, {kind: cellGPR, idx: 161}, {kind: cellGPR, idx: 257}, {kind: cellGPR, idx: 353}},
	0x62: {{kind: cellGPR, idx: 66}, {kind: cellGPR, idx: 162}, {kind: cellGPR, idx: 258}, {kind: cellGPR, idx: 354}},
	0x63: {{kind: cellGPR, idx: 67}, {kind: cellGPR, idx: 163}, {kind: cellGPR, idx: 259}, {kind: cellGPR, idx: 355}},
	0x64: {{kind: cellGPR, idx: 68}, {kind: cellGPR, idx: 164}, {kind: cellGPR, idx: 260}, {kind: cellGPR, idx: 356}},
	0x65: {{kind: cellGPR, idx: 69}, {kind: cellGPR, idx: 165}, {kind: cellGPR, idx: 261}, {kind: cellGPR, idx: 357}},
	0x66: {{kind: cellGPR, idx: 70}, {kind: cellGPR, idx: 166}, {kind: cellGPR, idx: 262}, {kind: cellGPR, idx: 358}},
	0x67: {{kind: cellGPR, idx: 71}, {kind: cellGPR, idx: 167}, {kind: cellGPR, idx: 263}, {kind: cellGPR, idx: 359}},
	0x68: {{kind: cellGPR, idx: 72}, {kind: cellGPR, idx: 168}, {kind: cellGPR, idx: 264}, {kind: cellGPR, idx: 360}},
	0x69: {{kind: cellGPR, idx: 73}, {kind: cellGPR, idx: 169}, {kind: cellGPR, idx: 265}, {kind: cellGPR, idx: 361}},
	0x6A: {{kind: cellGPR, idx: 74}, {kind: cellGPR, idx: 170}, {kind: cellGPR, idx: 266}, {kind: cellGPR, idx: 362}},
	0x6B: {{kind: cellGPR, idx: 75}, {kind: cellGPR, idx: 171}, {kind: cellGPR, idx: 267}, {kind: cellGPR, idx: 363}},
	0x6C: {{kind: cellGPR, idx: 76}, {kind: cellGPR, idx: 172}, {kind: cellGPR, idx: 268}, {kind: cellGPR, idx: 364}},
	0x6D: {{kind: cellGPR, idx: 77}, {kind: cellGPR, idx: 173}, {kind: cellGPR, idx: 269}, {kind: cellGPR, idx: 365}},
	0x6E: {{kind: cellGPR, idx: 78}, {kind: cellGPR, idx: 174}, {kind: cellGPR, idx: 270}, {kind: cellGPR, idx: 366}},
	0x6F: {{kind: cellGPR, idx: 79}, {kind: cellGPR, idx: 175}, {kind: cellGPR, idx: 271}, {kind: cellGPR, idx: 367}},
	0x70: {{kind: cellGPR, idx: 80}, {kind: cellGPR, idx: 80}, {kind: cellGPR, idx: 80}, {kind: cellGPR, idx: 80}},
	0x71: {{kind: cellGPR, idx: 81}, {kind: cellGPR, idx: 81}, {kind: cellGPR, idx: 81}, {kind: cellGPR, idx: 81}},
	0x72: {{kind: cellGPR, idx: 82}, {kind: cellGPR, idx: 82}, {kind: cellGPR, idx: 82}, {kind: cellGPR, idx: 82}},
	0x73: {{kind: cellGPR, idx: 83}, {kind: cellGPR, idx: 83}, {kind: cellGPR, idx: 83}, {kind: cellGPR, idx: 83}},
	0x74: {{kind: cellGPR, idx: 84}, {kind: cellGPR, idx: 84}, {kind: cellGPR, idx: 84}, {kind: cellGPR, idx: 84}},
	0x75: {{kind: cellGPR, idx: 85}, {kind: cellGPR, idx: 85}, {kind: cellGPR, idx: 85}, {kind: cellGPR, idx: 85}},
	0x76: {{kind: cellGPR, idx: 86}, {kind: cellGPR, idx: 86}, {kind: cellGPR, idx: 86}, {kind: cellGPR, idx: 86}},
	0x77: {{kind: cellGPR, idx: 87}, {kind: cellGPR, idx: 87}, {kind: cellGPR, idx: 87}, {kind: cellGPR, idx: 87}},
	0x78: {{kind: cellGPR, idx: 88}, {kind: cellGPR, idx: 88}, {kind: cellGPR, idx: 88}, {kind: cellGPR, idx: 88}},
	0x79: {{kind: cellGPR, idx: 89}, {kind: cellGPR, idx: 89}, {kind: cellGPR, idx: 89}, {kind: cellGPR, idx: 89}},
	0x7A: {{kind: cellGPR, idx: 90}, {kind: cellGPR, idx: 90}, {kind: cellGPR, idx: 90}, {kind: cellGPR, idx: 90}},
	0x7B: {{kind: cellGPR, idx: 91}, {kind: cellGPR, idx: 91}, {kind: cellGPR, idx: 91}, {kind: cellGPR, idx: 91}},
	0x7C: {{kind: cellGPR, idx: 92}, {kind: cellGPR, idx: 92}, {kind: cellGPR, idx: 92}, {kind: cellGPR, idx: 92}},
	0x7D: {{kind: cellGPR, idx: 93}, {kind: cellGPR, idx: 93}, {kind: cellGPR, idx: 93}, {kind: cellGPR, idx: 93}},
	0x7E: {{kind: cellGPR, idx: 94}, {kind: cellGPR, idx: 94}, {kind: cellGPR, idx: 94}, {kind: cellGPR, idx: 94}},
	0x7F: {{kind: cellGPR, idx: 95}, {kind: cellGPR, idx: 95}, {kind: cellGPR, idx: 95}, {kind: cellGPR, idx: 95}},
}
