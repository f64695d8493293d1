package game

// Manual is the rules summary shown before the first game and on "help".
const Manual = `How the pieces move:
  Each side starts with 16 pieces: 8 pawns, 2 rooks, 2 knights,
  2 bishops, 1 queen and 1 king.
  Pawns move forward 1 square (2 from their starting row) and
  capture diagonally.
  Rooks move any number of squares along a row or column.
  Knights jump in an L: 2 squares one way, then 1 sideways.
  Bishops move any number of squares diagonally.
  The queen moves any number of squares in any direction.
  The king moves 1 square in any direction.

How to win:
  There is no check. Capture the other side's king to win.

Commands:
  e2e4        move a piece (also "e2-e4" or "e2 e4")
  e2          select a piece, then name the target square
  board       show the board
  fen         show the position as FEN
  scores      show the high scores
  pause       pause until Enter is pressed
  help        show this text
  quit        leave the game
`
